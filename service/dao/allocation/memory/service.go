// Package memory provides an in-memory allocation history DAO.
package memory

import (
	"github.com/counselkit/counsel/model"
	"github.com/counselkit/counsel/service/dao"
	"github.com/counselkit/counsel/service/dao/store"
)

// Service stores allocation records in memory, keyed by allocation ID.
type Service struct {
	*store.MemoryStore[string, model.Allocation]
}

// Ensure Service implements dao.Service
var _ dao.Service[string, model.Allocation] = (*Service)(nil)

// New creates a new in-memory allocation DAO.
func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, model.Allocation](func(a *model.Allocation) string {
			return a.ID
		}),
	}
}
