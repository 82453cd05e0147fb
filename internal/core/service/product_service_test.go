package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

func newProductFixture() (*ProductService, *stubProductRepo, *stubBusinessRepo, *stubProductCache) {
	products := newStubProductRepo()
	businesses := newStubBusinessRepo()
	cache := newStubProductCache()
	svc := NewProductService(products, businesses, cache, zerolog.Nop())
	return svc, products, businesses, cache
}

func TestProductService_Create_AttachesToOwnBusiness(t *testing.T) {
	svc, _, businesses, _ := newProductFixture()
	b, _ := businesses.Create(context.Background(), &domain.Business{OwnerID: "u1"})

	p, err := svc.Create(context.Background(), &domain.User{ID: "u1"}, ports.ProductInput{
		Name: "lamp", Category: "home", OriginalPrice: 100, NewPrice: 75,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.BusinessID != b.ID {
		t.Fatalf("product attached to wrong business: %s", p.BusinessID)
	}
	if p.PercentDiscount != 25 {
		t.Fatalf("expected 25%% discount, got %v", p.PercentDiscount)
	}
	if p.Image != defaultProductImage {
		t.Fatalf("expected default image, got %s", p.Image)
	}
}

func TestProductService_Update_NonOwnerForbidden(t *testing.T) {
	svc, products, businesses, _ := newProductFixture()
	b, _ := businesses.Create(context.Background(), &domain.Business{OwnerID: "alice"})
	p, _ := products.Create(context.Background(), &domain.Product{BusinessID: b.ID, Name: "lamp", NewPrice: 75})

	// bob owns a business too, just not this product's parent.
	_, _ = businesses.Create(context.Background(), &domain.Business{OwnerID: "bob"})

	if _, err := svc.Update(context.Background(), &domain.User{ID: "bob"}, p.ID, ports.ProductInput{Name: "stolen"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if products.updateCalls != 0 {
		t.Fatalf("rejected mutation must not reach the repository")
	}
	stored, _ := products.FindByID(context.Background(), p.ID)
	if stored.Name != "lamp" {
		t.Fatalf("product mutated despite rejection: %+v", stored)
	}
}

func TestProductService_Delete_NonOwnerForbidden(t *testing.T) {
	svc, products, businesses, _ := newProductFixture()
	b, _ := businesses.Create(context.Background(), &domain.Business{OwnerID: "alice"})
	p, _ := products.Create(context.Background(), &domain.Product{BusinessID: b.ID})

	if err := svc.Delete(context.Background(), &domain.User{ID: "bob"}, p.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if products.deleteCalls != 0 {
		t.Fatalf("delete issued for rejected mutation")
	}
}

func TestProductService_Update_Owner(t *testing.T) {
	svc, products, businesses, cache := newProductFixture()
	b, _ := businesses.Create(context.Background(), &domain.Business{OwnerID: "alice"})
	p, _ := products.Create(context.Background(), &domain.Product{BusinessID: b.ID, Name: "lamp", OriginalPrice: 100, NewPrice: 100})

	updated, err := svc.Update(context.Background(), &domain.User{ID: "alice"}, p.ID, ports.ProductInput{
		Name: "lamp", Category: "home", OriginalPrice: 100, NewPrice: 50,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PercentDiscount != 50 {
		t.Fatalf("discount not recomputed: %v", updated.PercentDiscount)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != p.ID {
		t.Fatalf("cache not invalidated on update: %v", cache.invalidated)
	}
}

func TestProductService_List_ServedFromCache(t *testing.T) {
	svc, products, _, cache := newProductFixture()
	cache.list = []*domain.Product{{ID: "cached"}}
	_, _ = products.Create(context.Background(), &domain.Product{Name: "fresh"})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "cached" {
		t.Fatalf("expected cached list, got %+v", got)
	}
}

func TestProductService_List_PopulatesCacheOnMiss(t *testing.T) {
	svc, products, _, cache := newProductFixture()
	_, _ = products.Create(context.Background(), &domain.Product{Name: "lamp"})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 product, got %d", len(got))
	}
	if cache.list == nil {
		t.Fatalf("cache not populated after miss")
	}
}

func TestProductService_Create_NoBusiness(t *testing.T) {
	svc, _, _, _ := newProductFixture()

	if _, err := svc.Create(context.Background(), &domain.User{ID: "nobody"}, ports.ProductInput{Name: "x"}); err == nil {
		t.Fatalf("expected error when actor owns no business")
	}
}
