package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// Repos en memoria para los tests de casos de uso. Sin sincronización: los
// tests son secuenciales; la serialización por tenant se verifica a nivel SQL
// (FOR UPDATE) y no es reproducible con fakes.

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

var _ repository.TenantRepository = (*fakeTenantRepo)(nil)

func newFakeTenantRepo(tenants ...*entity.Tenant) *fakeTenantRepo {
	r := &fakeTenantRepo{tenants: make(map[string]*entity.Tenant)}
	for _, t := range tenants {
		cp := *t
		r.tenants[t.ID] = &cp
	}
	return r
}

func (r *fakeTenantRepo) Create(_ context.Context, t *entity.Tenant) error {
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTenantRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Tenant, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTenantRepo) GetByExternalRef(_ context.Context, ref string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.ExternalRef == ref {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) SetActive(_ context.Context, id string, active bool) error {
	if t, ok := r.tenants[id]; ok {
		t.IsActive = active
	}
	return nil
}

func (r *fakeTenantRepo) UpdatePlan(_ context.Context, id, planID string) error {
	if t, ok := r.tenants[id]; ok {
		t.SubscriptionPlan = planID
	}
	return nil
}

func (r *fakeTenantRepo) List(_ context.Context, _, _ int) ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

type fakeGrantRepo struct {
	grants map[string]map[string]*entity.TenantModuleGrant
	order  map[string][]string // orden de primera activación por tenant
}

var _ repository.ModuleGrantRepository = (*fakeGrantRepo)(nil)

func newFakeGrantRepo() *fakeGrantRepo {
	return &fakeGrantRepo{
		grants: make(map[string]map[string]*entity.TenantModuleGrant),
		order:  make(map[string][]string),
	}
}

func (r *fakeGrantRepo) GetEnabledModules(_ context.Context, tenantID string) ([]string, error) {
	var out []string
	for _, moduleID := range r.order[tenantID] {
		if g := r.grants[tenantID][moduleID]; g != nil && g.IsEnabled {
			out = append(out, moduleID)
		}
	}
	return out, nil
}

func (r *fakeGrantRepo) GetGrant(_ context.Context, tenantID, moduleID string) (*entity.TenantModuleGrant, error) {
	g, ok := r.grants[tenantID][moduleID]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGrantRepo) UpsertGrant(_ context.Context, tenantID, moduleID string, isEnabled bool, reason string) error {
	now := time.Now()
	if r.grants[tenantID] == nil {
		r.grants[tenantID] = make(map[string]*entity.TenantModuleGrant)
	}
	if g, ok := r.grants[tenantID][moduleID]; ok {
		g.IsEnabled = isEnabled
		g.EnabledAt = now
		g.Reason = reason
		g.UpdatedAt = now
		return nil
	}
	r.grants[tenantID][moduleID] = &entity.TenantModuleGrant{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ModuleID:  moduleID,
		IsEnabled: isEnabled,
		EnabledAt: now,
		Reason:    reason,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.order[tenantID] = append(r.order[tenantID], moduleID)
	return nil
}

func (r *fakeGrantRepo) ListGrants(_ context.Context, tenantID string) ([]*entity.TenantModuleGrant, error) {
	var out []*entity.TenantModuleGrant
	for _, moduleID := range r.order[tenantID] {
		cp := *r.grants[tenantID][moduleID]
		out = append(out, &cp)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndTenant(_ context.Context, email, tenantID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.TenantID == tenantID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByTenant(_ context.Context, tenantID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.TenantID == tenantID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountByTenant(_ context.Context, tenantID string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

// fakeTxRunner ejecuta fn directamente contra los fakes, sin transacción real.
type fakeTxRunner struct {
	tenants repository.TenantRepository
	grants  repository.ModuleGrantRepository
}

var _ usecase.EntitlementTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.TenantRepository, repository.ModuleGrantRepository) error) error {
	return fn(f.tenants, f.grants)
}
