package usecase

// In-memory repository fakes shared by the usecase tests. They follow the
// same contracts as the Firestore adapters (nil policies, sentinel errors,
// atomic reserve/redeem semantics) without the emulator.

import (
	"context"
	"sort"
	"time"

	cakedom "patisserie/internal/domain/cake"
	cartdom "patisserie/internal/domain/cart"
	catalogdom "patisserie/internal/domain/catalog"
	discdom "patisserie/internal/domain/discount"
	fbdom "patisserie/internal/domain/feedback"
	inqdom "patisserie/internal/domain/inquiry"
	orderdom "patisserie/internal/domain/order"
	paydom "patisserie/internal/domain/payment"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// ----------------------------
// cart
// ----------------------------

type memCartRepo struct {
	carts map[string]cartdom.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]cartdom.Cart{}}
}

func (r *memCartRepo) GetByCustomer(ctx context.Context, customerID string) (*cartdom.Cart, error) {
	c, ok := r.carts[customerID]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.CatalogLines = append([]cartdom.CatalogLine(nil), c.CatalogLines...)
	cp.CakeSpecIDs = append([]string(nil), c.CakeSpecIDs...)
	return &cp, nil
}

func (r *memCartRepo) Upsert(ctx context.Context, c *cartdom.Cart) error {
	r.carts[c.ID] = *c
	return nil
}

func (r *memCartRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	delete(r.carts, customerID)
	return nil
}

// ----------------------------
// catalog
// ----------------------------

type memCatalogRepo struct {
	items map[string]catalogdom.Item
}

func newMemCatalogRepo(items ...catalogdom.Item) *memCatalogRepo {
	r := &memCatalogRepo{items: map[string]catalogdom.Item{}}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *memCatalogRepo) GetByID(ctx context.Context, id string) (*catalogdom.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, catalogdom.ErrNotFound
	}
	cp := it
	return &cp, nil
}

func (r *memCatalogRepo) List(ctx context.Context) ([]catalogdom.Item, error) {
	out := make([]catalogdom.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCatalogRepo) Upsert(ctx context.Context, it *catalogdom.Item) error {
	r.items[it.ID] = *it
	return nil
}

func (r *memCatalogRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memCatalogRepo) ReserveStock(ctx context.Context, id string, qty int) (*catalogdom.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, catalogdom.ErrNotFound
	}
	if err := it.Reserve(qty, time.Now().UTC()); err != nil {
		return nil, err
	}
	r.items[id] = it
	cp := it
	return &cp, nil
}

// ----------------------------
// cake
// ----------------------------

type memCakeRepo struct {
	specs map[string]cakedom.Spec
}

func newMemCakeRepo(specs ...cakedom.Spec) *memCakeRepo {
	r := &memCakeRepo{specs: map[string]cakedom.Spec{}}
	for _, s := range specs {
		r.specs[s.ID] = s
	}
	return r
}

func (r *memCakeRepo) GetByID(ctx context.Context, id string) (*cakedom.Spec, error) {
	s, ok := r.specs[id]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (r *memCakeRepo) ListByCustomer(ctx context.Context, customerEmail string) ([]cakedom.Spec, error) {
	var out []cakedom.Spec
	for _, s := range r.specs {
		if s.CustomerEmail == customerEmail {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCakeRepo) Create(ctx context.Context, s *cakedom.Spec) error {
	r.specs[s.ID] = *s
	return nil
}

func (r *memCakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.specs, id)
	return nil
}

// ----------------------------
// order
// ----------------------------

type memOrderRepo struct {
	orders map[string]orderdom.Order
}

func newMemOrderRepo(orders ...orderdom.Order) *memOrderRepo {
	r := &memOrderRepo{orders: map[string]orderdom.Order{}}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, orderdom.ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (r *memOrderRepo) Create(ctx context.Context, o *orderdom.Order) error {
	r.orders[o.ID] = *o
	return nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id string, st orderdom.Status) (*orderdom.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, orderdom.ErrNotFound
	}
	o.Status = st
	r.orders[id] = o
	cp := o
	return &cp, nil
}

func (r *memOrderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return orderdom.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) List(ctx context.Context) ([]orderdom.Order, error) {
	out := make([]orderdom.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]orderdom.Order, error) {
	var out []orderdom.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) CountByStatus(ctx context.Context, st orderdom.Status) (int, error) {
	n := 0
	for _, o := range r.orders {
		if o.Status == st {
			n++
		}
	}
	return n, nil
}

func (r *memOrderRepo) CountForCustomer(ctx context.Context, customerID string, st orderdom.Status) (int, error) {
	n := 0
	for _, o := range r.orders {
		if o.CustomerID == customerID && o.Status == st {
			n++
		}
	}
	return n, nil
}

func (r *memOrderRepo) SumCompletedInRange(ctx context.Context, from, to time.Time) (int, error) {
	sum := 0
	for _, o := range r.orders {
		if o.Status != orderdom.StatusCompleted {
			continue
		}
		if o.OrderedAt.Before(from) || !o.OrderedAt.Before(to) {
			continue
		}
		sum += o.TotalPrice
	}
	return sum, nil
}

// ----------------------------
// discount
// ----------------------------

type memDiscountRepo struct {
	grants map[string]discdom.Grant
}

func newMemDiscountRepo(grants ...discdom.Grant) *memDiscountRepo {
	r := &memDiscountRepo{grants: map[string]discdom.Grant{}}
	for _, g := range grants {
		r.grants[g.Code] = g
	}
	return r
}

func (r *memDiscountRepo) GetByCode(ctx context.Context, code string) (*discdom.Grant, error) {
	g, ok := r.grants[code]
	if !ok {
		return nil, nil
	}
	cp := g
	return &cp, nil
}

func (r *memDiscountRepo) Create(ctx context.Context, g *discdom.Grant) error {
	r.grants[g.Code] = *g
	return nil
}

func (r *memDiscountRepo) Redeem(ctx context.Context, code string) (*discdom.Grant, error) {
	g, ok := r.grants[code]
	if !ok {
		return nil, discdom.ErrInvalidCode
	}
	if err := g.Redeem(); err != nil {
		return nil, err
	}
	r.grants[code] = g
	cp := g
	return &cp, nil
}

// ----------------------------
// feedback
// ----------------------------

type memFeedbackRepo struct {
	entries map[string]fbdom.Feedback
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{entries: map[string]fbdom.Feedback{}}
}

func (r *memFeedbackRepo) GetByID(ctx context.Context, id string) (*fbdom.Feedback, error) {
	f, ok := r.entries[id]
	if !ok {
		return nil, fbdom.ErrNotFound
	}
	cp := f
	return &cp, nil
}

func (r *memFeedbackRepo) Create(ctx context.Context, f *fbdom.Feedback) error {
	r.entries[f.ID] = *f
	return nil
}

func (r *memFeedbackRepo) ListApproved(ctx context.Context) ([]fbdom.Feedback, error) {
	var out []fbdom.Feedback
	for _, f := range r.entries {
		if f.Approved {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memFeedbackRepo) ListAll(ctx context.Context) ([]fbdom.Feedback, error) {
	out := make([]fbdom.Feedback, 0, len(r.entries))
	for _, f := range r.entries {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memFeedbackRepo) SetApproved(ctx context.Context, id string, approved bool) (*fbdom.Feedback, error) {
	f, ok := r.entries[id]
	if !ok {
		return nil, fbdom.ErrNotFound
	}
	f.Approved = approved
	r.entries[id] = f
	cp := f
	return &cp, nil
}

func (r *memFeedbackRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return fbdom.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// ----------------------------
// inquiry
// ----------------------------

type memInquiryRepo struct {
	entries map[string]inqdom.Inquiry
}

func newMemInquiryRepo() *memInquiryRepo {
	return &memInquiryRepo{entries: map[string]inqdom.Inquiry{}}
}

func (r *memInquiryRepo) GetByID(ctx context.Context, id string) (*inqdom.Inquiry, error) {
	q, ok := r.entries[id]
	if !ok {
		return nil, inqdom.ErrNotFound
	}
	cp := q
	return &cp, nil
}

func (r *memInquiryRepo) Create(ctx context.Context, q *inqdom.Inquiry) error {
	r.entries[q.ID] = *q
	return nil
}

func (r *memInquiryRepo) ListAll(ctx context.Context) ([]inqdom.Inquiry, error) {
	out := make([]inqdom.Inquiry, 0, len(r.entries))
	for _, q := range r.entries {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memInquiryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return inqdom.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// ----------------------------
// payment
// ----------------------------

type memCardRepo struct {
	records []paydom.CardRecord
}

func (r *memCardRepo) FindMatch(ctx context.Context, holderName, cardNumber, expiry, cvv string) (*paydom.CardRecord, error) {
	for _, rec := range r.records {
		if rec.Matches(holderName, cardNumber, expiry, cvv) {
			cp := rec
			return &cp, nil
		}
	}
	return nil, nil
}

// ----------------------------
// system config
// ----------------------------

type memConfigRepo struct {
	vacation bool
}

func (r *memConfigRepo) GetVacationMode(ctx context.Context) (bool, error) {
	return r.vacation, nil
}

func (r *memConfigRepo) SetVacationMode(ctx context.Context, enabled bool) error {
	r.vacation = enabled
	return nil
}
