package mock

//go:generate go run go.uber.org/mock/mockgen -package mock -destination aliases.go github.com/buildbarn/bb-pathlib/internal/mock/aliases PrometheusGatherer,KeySet
//go:generate go run go.uber.org/mock/mockgen -package mock -destination util.go github.com/buildbarn/bb-pathlib/pkg/util ErrorLogger
