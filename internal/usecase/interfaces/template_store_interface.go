package interfaces

import (
	"context"

	"checkmaster/internal/domain/entities"
)

// ITemplateStore is the durable home of templates and of the order log.
//
// Contract:
//   - LoadTemplates seeds the built-in presets the first time it runs on an
//     empty store and never again
//   - SaveTemplate upserts by id, keeping the position of every other template
//   - AppendOrder adds to the end of the log; entries are never changed
//   - I/O failures are returned as *StoreError
type ITemplateStore interface {
	LoadTemplates(ctx context.Context) ([]entities.ChecklistTemplate, error)
	SaveTemplate(ctx context.Context, t entities.ChecklistTemplate) error
	LoadOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	AppendOrder(ctx context.Context, o entities.ServiceOrder) error
}
