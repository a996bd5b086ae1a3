package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"checkmaster/internal/domain/checklist"
	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/evaluation"
	"checkmaster/internal/domain/inspection"
	"checkmaster/internal/domain/report"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrInvalidTemplateID    = errors.New("invalid template id")
	ErrUnknownBuilderAction = errors.New("unknown builder action")
)

// BuilderAction names a template builder operation.
type BuilderAction string

const (
	BuilderAddField       BuilderAction = "add_field"
	BuilderRemoveField    BuilderAction = "remove_field"
	BuilderMoveField      BuilderAction = "move_field"
	BuilderUpdateField    BuilderAction = "update_field"
	BuilderAddOption      BuilderAction = "add_option"
	BuilderUpdateOption   BuilderAction = "update_option"
	BuilderRemoveOption   BuilderAction = "remove_option"
	BuilderToggleFavorite BuilderAction = "toggle_favorite"
	BuilderUpdateDetails  BuilderAction = "update_details"
)

// BuilderCommand is one edit applied to a draft template. Only the members
// used by Action are read.
type BuilderCommand struct {
	Action      BuilderAction
	FieldType   entities.FieldType
	Label       string
	FieldID     string
	Index       int
	OptionIndex int
	Direction   checklist.Direction
	Field       checklist.FieldUpdate
	Option      checklist.OptionUpdate
	Details     checklist.TemplateUpdate
}

// ITemplateUseCase covers the template builder and the template store.
//
// Drafts live with the caller: NewDraft and ApplyBuilder never touch the
// store, only Save persists.
type ITemplateUseCase interface {
	List(ctx context.Context) ([]entities.ChecklistTemplate, error)
	ListFavorites(ctx context.Context) ([]entities.ChecklistTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ChecklistTemplate, error)
	Save(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error)
	NewDraft() entities.ChecklistTemplate
	ApplyBuilder(t entities.ChecklistTemplate, cmd BuilderCommand) (entities.ChecklistTemplate, error)
	StartRun(ctx context.Context, id string) (entities.InspectionRun, evaluation.Result, error)
}

type TemplateUseCase struct {
	store   interfaces.ITemplateStore
	policy  evaluation.Policy
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(store interfaces.ITemplateStore, policy evaluation.Policy, log *zap.Logger, m *metrics.Metrics) *TemplateUseCase {
	return &TemplateUseCase{
		store:   store,
		policy:  policy,
		logger:  logger.OrNop(log).Named("template.usecase"),
		metrics: m,
		now:     time.Now,
	}
}

func (u *TemplateUseCase) List(ctx context.Context) ([]entities.ChecklistTemplate, error) {
	ts, err := u.store.LoadTemplates(ctx)
	if err != nil {
		u.logger.Error("load templates failed", zap.Error(err))
		u.metrics.RecordStoreError("load_templates")
		return nil, err
	}
	return ts, nil
}

func (u *TemplateUseCase) ListFavorites(ctx context.Context) ([]entities.ChecklistTemplate, error) {
	ts, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.Favorites(ts), nil
}

func (u *TemplateUseCase) GetByID(ctx context.Context, id string) (entities.ChecklistTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChecklistTemplate{}, ErrInvalidTemplateID
	}
	ts, err := u.List(ctx)
	if err != nil {
		return entities.ChecklistTemplate{}, err
	}
	for _, t := range ts {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.ChecklistTemplate{}, ErrTemplateNotFound
}

// Save upserts t. The stored value is a private copy.
func (u *TemplateUseCase) Save(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
	t.ID = strings.TrimSpace(t.ID)
	if err := checklist.Validate(t); err != nil {
		u.logger.Warn("invalid template rejected", zap.String("template_id", t.ID), zap.Error(err))
		return entities.ChecklistTemplate{}, err
	}
	saved := t.Clone()
	if err := u.store.SaveTemplate(ctx, saved); err != nil {
		u.logger.Error("save template failed", zap.String("template_id", t.ID), zap.Error(err))
		u.metrics.RecordStoreError("save_template")
		return entities.ChecklistTemplate{}, err
	}
	u.metrics.RecordTemplateSaved()
	u.logger.Info("template saved",
		zap.String("template_id", saved.ID),
		zap.String("name", saved.Name),
		zap.Int("fields", len(saved.Fields)),
	)
	return saved, nil
}

func (u *TemplateUseCase) NewDraft() entities.ChecklistTemplate {
	return checklist.NewTemplate()
}

func (u *TemplateUseCase) ApplyBuilder(t entities.ChecklistTemplate, cmd BuilderCommand) (entities.ChecklistTemplate, error) {
	var (
		next entities.ChecklistTemplate
		err  error
	)
	switch cmd.Action {
	case BuilderAddField:
		next, err = checklist.AddField(t, cmd.FieldType, cmd.Label)
	case BuilderRemoveField:
		next = checklist.RemoveField(t, cmd.FieldID)
	case BuilderMoveField:
		next = checklist.MoveField(t, cmd.Index, cmd.Direction)
	case BuilderUpdateField:
		next, err = checklist.UpdateField(t, cmd.Index, cmd.Field)
	case BuilderAddOption:
		next, err = checklist.AddOption(t, cmd.Index)
	case BuilderUpdateOption:
		next, err = checklist.UpdateOption(t, cmd.Index, cmd.OptionIndex, cmd.Option)
	case BuilderRemoveOption:
		next, err = checklist.RemoveOption(t, cmd.Index, cmd.OptionIndex)
	case BuilderToggleFavorite:
		next = checklist.ToggleFavorite(t)
	case BuilderUpdateDetails:
		next = checklist.UpdateDetails(t, cmd.Details)
	default:
		return t, ErrUnknownBuilderAction
	}
	if err != nil {
		u.logger.Debug("builder operation rejected",
			zap.String("template_id", t.ID),
			zap.String("action", string(cmd.Action)),
			zap.Error(err),
		)
		return t, err
	}
	return next, nil
}

// StartRun copies a stored template into a new run and evaluates its preset
// values.
func (u *TemplateUseCase) StartRun(ctx context.Context, id string) (entities.InspectionRun, evaluation.Result, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InspectionRun{}, evaluation.Result{}, err
	}
	run := inspection.NewRun(t, u.now())
	res := u.policy.Evaluate(run.Template.Fields, "", run.Values)
	u.logger.Debug("run started", zap.String("template_id", t.ID))
	return run, res, nil
}
