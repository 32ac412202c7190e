package services

import (
	"context"
	"strings"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/models"
)

// DefaultWebProjectCategory is applied to web projects created without one.
const DefaultWebProjectCategory = "Web Development"

type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type SkillStore interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, in models.SkillInput) (*models.Skill, error)
	Update(ctx context.Context, id int64, in models.SkillInput) (*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type ToolStore interface {
	List(ctx context.Context) ([]models.Tool, error)
	Create(ctx context.Context, in models.ToolInput) (*models.Tool, error)
	Update(ctx context.Context, id int64, in models.ToolInput) (*models.Tool, error)
	Delete(ctx context.Context, id int64) error
}

type PersonalInfoStore interface {
	Get(ctx context.Context) (*models.PersonalInfo, error)
	Upsert(ctx context.Context, in models.PersonalInfoInput) (*models.PersonalInfo, error)
}

// ProjectService serves both projects and web projects; they differ only in
// the backing table and the default category.
type ProjectService struct {
	store           ProjectStore
	defaultCategory string
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

func NewWebProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store, defaultCategory: DefaultWebProjectCategory}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.store.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	if blank(in.Title) {
		return nil, apperrors.Validation("Title is required")
	}
	if s.defaultCategory != "" && blank(in.Category) {
		category := s.defaultCategory
		in.Category = &category
	}
	return s.store.Create(ctx, in)
}

func (s *ProjectService) Update(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	if in.Title != nil && blank(in.Title) {
		return nil, apperrors.Validation("Title cannot be empty")
	}
	return s.store.Update(ctx, id, in)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

type SkillService struct {
	store SkillStore
}

func NewSkillService(store SkillStore) *SkillService {
	return &SkillService{store: store}
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	return s.store.List(ctx)
}

func (s *SkillService) Create(ctx context.Context, in models.SkillInput) (*models.Skill, error) {
	if blank(in.Name) {
		return nil, apperrors.Validation("Name is required")
	}
	if err := validateLevel(in.Level); err != nil {
		return nil, err
	}
	return s.store.Create(ctx, in)
}

func (s *SkillService) Update(ctx context.Context, id int64, in models.SkillInput) (*models.Skill, error) {
	if in.Name != nil && blank(in.Name) {
		return nil, apperrors.Validation("Name cannot be empty")
	}
	if err := validateLevel(in.Level); err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, in)
}

func (s *SkillService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

type ToolService struct {
	store ToolStore
}

func NewToolService(store ToolStore) *ToolService {
	return &ToolService{store: store}
}

func (s *ToolService) List(ctx context.Context) ([]models.Tool, error) {
	return s.store.List(ctx)
}

func (s *ToolService) Create(ctx context.Context, in models.ToolInput) (*models.Tool, error) {
	if blank(in.Name) {
		return nil, apperrors.Validation("Name is required")
	}
	return s.store.Create(ctx, in)
}

func (s *ToolService) Update(ctx context.Context, id int64, in models.ToolInput) (*models.Tool, error) {
	if in.Name != nil && blank(in.Name) {
		return nil, apperrors.Validation("Name cannot be empty")
	}
	return s.store.Update(ctx, id, in)
}

func (s *ToolService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

type PersonalInfoService struct {
	store PersonalInfoStore
}

func NewPersonalInfoService(store PersonalInfoStore) *PersonalInfoService {
	return &PersonalInfoService{store: store}
}

// Get returns nil when no profile has been saved yet.
func (s *PersonalInfoService) Get(ctx context.Context) (*models.PersonalInfo, error) {
	return s.store.Get(ctx)
}

func (s *PersonalInfoService) Save(ctx context.Context, in models.PersonalInfoInput) (*models.PersonalInfo, error) {
	return s.store.Upsert(ctx, in)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func validateLevel(level *int) error {
	if level != nil && (*level < 0 || *level > 100) {
		return apperrors.Validation("Level must be between 0 and 100")
	}
	return nil
}
