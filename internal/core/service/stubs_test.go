package service

import (
	"context"
	"fmt"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// --- user repository stub ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetVerified(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsVerified = true
	return nil
}

// --- business repository stub ---

type stubBusinessRepo struct {
	businesses  map[string]*domain.Business
	seq         int
	updateCalls int
	logoCalls   int
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{businesses: make(map[string]*domain.Business)}
}

func cloneBusiness(b *domain.Business) *domain.Business {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBusinessRepo) Create(_ context.Context, b *domain.Business) (*domain.Business, error) {
	r.seq++
	copy := cloneBusiness(b)
	copy.ID = fmt.Sprintf("b%d", r.seq)
	r.businesses[copy.ID] = cloneBusiness(copy)
	return copy, nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id string) (*domain.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, domain.ErrBusinessNotFound
	}
	return cloneBusiness(b), nil
}

func (r *stubBusinessRepo) FindByOwner(_ context.Context, ownerID string) (*domain.Business, error) {
	for _, b := range r.businesses {
		if b.OwnerID == ownerID {
			return cloneBusiness(b), nil
		}
	}
	return nil, domain.ErrBusinessNotFound
}

func (r *stubBusinessRepo) Update(_ context.Context, b *domain.Business) error {
	if _, ok := r.businesses[b.ID]; !ok {
		return domain.ErrBusinessNotFound
	}
	r.updateCalls++
	r.businesses[b.ID] = cloneBusiness(b)
	return nil
}

func (r *stubBusinessRepo) UpdateLogo(_ context.Context, id, logo string) error {
	b, ok := r.businesses[id]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	r.logoCalls++
	b.Logo = logo
	return nil
}

// --- product repository stub ---

type stubProductRepo struct {
	products    map[string]*domain.Product
	seq         int
	updateCalls int
	deleteCalls int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.seq++
	copy := cloneProduct(p)
	copy.ID = fmt.Sprintf("p%d", r.seq)
	r.products[copy.ID] = cloneProduct(copy)
	return copy, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.updateCalls++
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	r.deleteCalls++
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) UpdateImage(_ context.Context, id, image string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	r.updateCalls++
	p.Image = image
	return nil
}

// --- mail dispatcher stub ---

type stubMailDispatcher struct {
	sent []ports.VerificationEmail
}

func (d *stubMailDispatcher) Enqueue(msg ports.VerificationEmail) {
	d.sent = append(d.sent, msg)
}

// --- product cache stub ---

type stubProductCache struct {
	list        []*domain.Product
	products    map[string]*domain.Product
	invalidated []string
}

func newStubProductCache() *stubProductCache {
	return &stubProductCache{products: make(map[string]*domain.Product)}
}

func (c *stubProductCache) GetList(_ context.Context) ([]*domain.Product, error) {
	return c.list, nil
}

func (c *stubProductCache) SetList(_ context.Context, products []*domain.Product) error {
	c.list = products
	return nil
}

func (c *stubProductCache) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	return c.products[id], nil
}

func (c *stubProductCache) SetProduct(_ context.Context, p *domain.Product) error {
	c.products[p.ID] = p
	return nil
}

func (c *stubProductCache) Invalidate(_ context.Context, id string) error {
	c.list = nil
	if id != "" {
		delete(c.products, id)
	}
	c.invalidated = append(c.invalidated, id)
	return nil
}
