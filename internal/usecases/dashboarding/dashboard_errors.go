package dashboarding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

var (
	ErrDataSourceUnavailable = errors.New("fonte de dados indisponível")
	ErrUnknownGranularity    = errors.New("granularidade de vendas desconhecida")
)

// DashboardError carrega o código de API e a coleção que falhou
type DashboardError struct {
	Err        error
	Code       string
	Collection string
}

func (e *DashboardError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Collection)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func newDataSourceError(collection string, err error) *DashboardError {
	return &DashboardError{
		Err:        fmt.Errorf("%w: %w", ErrDataSourceUnavailable, err),
		Code:       apiErrors.ErrDataSourceUnavail,
		Collection: collection,
	}
}
