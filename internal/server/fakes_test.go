package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/mailer"
	"portfolio_api/internal/models"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type memProjects struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Project
}

func newMemProjects() *memProjects {
	return &memProjects{rows: map[int64]models.Project{}}
}

func (m *memProjects) List(context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Project{}
	for _, p := range m.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memProjects) Create(_ context.Context, in models.ProjectInput) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	now := time.Now()
	p := models.Project{
		ID:           m.nextID,
		Title:        deref(in.Title),
		Description:  deref(in.Description),
		Image:        deref(in.Image),
		Technologies: in.Technologies,
		GithubURL:    deref(in.GithubURL),
		LiveURL:      deref(in.LiveURL),
		Category:     deref(in.Category),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	m.rows[p.ID] = p
	return &p, nil
}

func (m *memProjects) Update(_ context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, apperrors.NotFound("Project not found")
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Technologies != nil {
		p.Technologies = in.Technologies
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	p.UpdatedAt = time.Now()
	m.rows[id] = p
	return &p, nil
}

func (m *memProjects) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperrors.NotFound("Project not found")
	}
	delete(m.rows, id)
	return nil
}

type memSkills struct {
	mu   sync.Mutex
	rows []models.Skill
	err  error
}

func (m *memSkills) List(context.Context) ([]models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := append([]models.Skill{}, m.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memSkills) Create(_ context.Context, in models.SkillInput) (*models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.Skill{ID: int64(len(m.rows) + 1), Name: deref(in.Name), Category: deref(in.Category)}
	if in.Level != nil {
		s.Level = *in.Level
	}
	m.rows = append(m.rows, s)
	return &s, nil
}

func (m *memSkills) Update(_ context.Context, id int64, in models.SkillInput) (*models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			if in.Level != nil {
				m.rows[i].Level = *in.Level
			}
			s := m.rows[i]
			return &s, nil
		}
	}
	return nil, apperrors.NotFound("Skill not found")
}

func (m *memSkills) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Skill not found")
}

type memTools struct{}

func (memTools) List(context.Context) ([]models.Tool, error) { return []models.Tool{}, nil }
func (memTools) Create(_ context.Context, in models.ToolInput) (*models.Tool, error) {
	return &models.Tool{ID: 1, Name: deref(in.Name), Icon: deref(in.Icon)}, nil
}
func (memTools) Update(context.Context, int64, models.ToolInput) (*models.Tool, error) {
	return nil, apperrors.NotFound("Tool not found")
}
func (memTools) Delete(context.Context, int64) error { return apperrors.NotFound("Tool not found") }

type memPersonal struct {
	mu   sync.Mutex
	info *models.PersonalInfo
	err  error
}

func (m *memPersonal) Get(context.Context) (*models.PersonalInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, apperrors.Storage("failed to fetch personal info", m.err)
	}
	return m.info, nil
}

func (m *memPersonal) Upsert(_ context.Context, in models.PersonalInfoInput) (*models.PersonalInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.info == nil {
		m.info = &models.PersonalInfo{ID: 1}
	}
	if in.Name != nil {
		m.info.Name = *in.Name
	}
	if in.Title != nil {
		m.info.Title = *in.Title
	}
	m.info.UpdatedAt = time.Now()
	out := *m.info
	return &out, nil
}

type memContacts struct {
	mu   sync.Mutex
	rows []models.ContactSubmission
}

func (m *memContacts) Create(_ context.Context, s *models.ContactSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = int64(len(m.rows) + 1)
	s.CreatedAt = time.Now()
	m.rows = append(m.rows, *s)
	return nil
}

func (m *memContacts) List(context.Context) ([]models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ContactSubmission{}, m.rows...), nil
}

type memBookings struct {
	mu   sync.Mutex
	rows []models.ProjectBooking
}

func (m *memBookings) Create(_ context.Context, b *models.ProjectBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *b)
	return nil
}

func (m *memBookings) List(context.Context) ([]models.ProjectBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ProjectBooking{}, m.rows...), nil
}

type memObjects struct {
	mu    sync.Mutex
	calls int
}

func (m *memObjects) Upload(_ context.Context, name string, _ []byte, bucket, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return "https://cdn.example.com/" + bucket + "/" + name, nil
}

type memDenylist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (m *memDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.revoked == nil {
		m.revoked = map[string]bool{}
	}
	m.revoked[jti] = true
	return nil
}

func (m *memDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[jti], nil
}

type staticHealth struct{ err error }

func (h staticHealth) Check(context.Context) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "connected", nil
}

type failingMailer struct{}

func (failingMailer) Send(context.Context, mailer.Message) (string, error) {
	return "", apperrors.New(apperrors.KindNotification, "relay down")
}

type okMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *okMailer) Send(_ context.Context, msg mailer.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return "<test@example.com>", nil
}
