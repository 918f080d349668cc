package prometheus

import (
	"io"

	"github.com/buildbarn/bb-pathlib/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteText gathers metrics and writes them to w, using the Prometheus
// text exposition format.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return util.StatusWrap(err, "Failed to gather metrics")
	}
	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return util.StatusWrapf(err, "Failed to encode metric family %#v", family.GetName())
		}
	}
	return nil
}
