package prometheus

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_model/go"
)

// FamilyFilter decides whether a metric family is retained by a
// filtering Gatherer.
type FamilyFilter func(family *io_prometheus_client.MetricFamily) bool

// MatchName returns a FamilyFilter that retains metric families whose
// name matches a regular expression pattern.
func MatchName(namePattern *regexp.Regexp) FamilyFilter {
	return func(family *io_prometheus_client.MetricFamily) bool {
		return family.Name != nil && namePattern.MatchString(*family.Name)
	}
}

// MatchLabel returns a FamilyFilter that retains metric families that
// contain at least one metric with a given label value. Metrics within
// the family that have a different value are removed.
func MatchLabel(name, value string) FamilyFilter {
	return func(family *io_prometheus_client.MetricFamily) bool {
		metrics := family.Metric[:0:0]
		for _, metric := range family.Metric {
			for _, label := range metric.Label {
				if label.GetName() == name && label.GetValue() == value {
					metrics = append(metrics, metric)
					break
				}
			}
		}
		family.Metric = metrics
		return len(metrics) > 0
	}
}

type filteringGatherer struct {
	base    prometheus.Gatherer
	filters []FamilyFilter
}

// NewFilteringGatherer creates a decorator for Gatherer that only
// returns the metric families that are retained by all filters.
func NewFilteringGatherer(base prometheus.Gatherer, filters ...FamilyFilter) prometheus.Gatherer {
	return &filteringGatherer{
		base:    base,
		filters: filters,
	}
}

func (g *filteringGatherer) Gather() ([]*io_prometheus_client.MetricFamily, error) {
	allFamilies, err := g.base.Gather()
	if err != nil {
		return nil, err
	}
	filteredFamilies := make([]*io_prometheus_client.MetricFamily, 0, len(allFamilies))
FamilyLoop:
	for _, family := range allFamilies {
		for _, filter := range g.filters {
			if !filter(family) {
				continue FamilyLoop
			}
		}
		filteredFamilies = append(filteredFamilies, family)
	}
	return filteredFamilies, nil
}
