package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/rs/zerolog"
)

// CartService owns one session's cart and serializes every access to it.
//
// Every change bumps a revision, so a checkout can tell whether the cart still
// holds what it submitted. While a confirmed checkout records its order the
// cart is locked and mutations fail with domain.ErrCartLocked.
type CartService struct {
	mu       sync.Mutex
	cart     *domain.Cart
	revision uint64
	locked   bool

	catalog  port.Catalog
	notifier port.Notifier
	fees     domain.Fees
	log      zerolog.Logger
}

func NewCartService(catalog port.Catalog, notifier port.Notifier, fees domain.Fees, log zerolog.Logger) *CartService {
	return &CartService{
		cart:     domain.NewCart(),
		catalog:  catalog,
		notifier: notifier,
		fees:     fees,
		log:      log,
	}
}

// AddItem resolves the item and the option picks through the catalog and adds
// the resulting line. Groups without a pick take their first choice.
func (s *CartService) AddItem(ctx context.Context, restaurantID, itemID string, quantity int, picks map[string]string) (domain.CartEntry, error) {
	selected, item, err := s.resolve(ctx, restaurantID, itemID, picks)
	if err != nil {
		return domain.CartEntry{}, err
	}

	return s.AddMenuItem(ctx, item, quantity, selected)
}

// Selection resolves option picks into the selection that identifies a line,
// so that callers can address a single variant with RemoveLine or SetLineQuantity.
func (s *CartService) Selection(ctx context.Context, restaurantID, itemID string, picks map[string]string) ([]domain.SelectedOption, error) {
	selected, _, err := s.resolve(ctx, restaurantID, itemID, picks)
	return selected, err
}

func (s *CartService) AddMenuItem(ctx context.Context, item domain.MenuItem, quantity int, selected []domain.SelectedOption) (domain.CartEntry, error) {
	s.mu.Lock()
	entry, err := s.addLocked(item, quantity, selected)
	s.mu.Unlock()

	if err != nil {
		s.log.Warn().Err(err).Str("item_id", item.ID).Int("quantity", quantity).Msg("add to cart rejected")
		return domain.CartEntry{}, err
	}

	s.log.Debug().
		Str("item_id", item.ID).
		Int("quantity", quantity).
		Int("line_quantity", entry.Quantity).
		Msg("item added to cart")

	if s.notifier != nil {
		s.notifier.ItemAdded(ctx, quantity, item.Name)
	}

	return entry, nil
}

// RemoveItem removes every line of the item, whatever options were chosen.
func (s *CartService) RemoveItem(itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return 0, err
	}

	n := s.cart.RemoveItem(itemID)
	s.touch(n > 0)

	return n, nil
}

// UpdateQuantity applies to every line of the item; zero or less removes them.
func (s *CartService) UpdateQuantity(itemID string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return 0, err
	}

	n := s.cart.UpdateQuantity(itemID, quantity)
	s.touch(n > 0)

	return n, nil
}

func (s *CartService) RemoveLine(itemID string, selected []domain.SelectedOption) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return false, err
	}

	removed := s.cart.RemoveLine(itemID, selected)
	s.touch(removed)

	return removed, nil
}

func (s *CartService) SetLineQuantity(itemID string, selected []domain.SelectedOption, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return err
	}

	if err := s.cart.SetLineQuantity(itemID, selected, quantity); err != nil {
		return err
	}
	s.touch(true)

	return nil
}

func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writable(); err != nil {
		return err
	}

	s.touch(!s.cart.IsEmpty())
	s.cart.Clear()

	return nil
}

// CommitAndClear is the side effect of a successful checkout.
func (s *CartService) CommitAndClear() {
	s.mu.Lock()
	lines := s.commitLocked()
	s.mu.Unlock()

	s.log.Info().Int("lines", lines).Msg("cart committed")
}

func (s *CartService) Entries() []domain.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Entries()
}

func (s *CartService) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.TotalItemCount()
}

func (s *CartService) GroupByRestaurant() []domain.RestaurantGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.GroupByRestaurant()
}

// Summary returns the totals and the grouped lines from one consistent view of the cart.
func (s *CartService) Summary() domain.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Summarize(s.cart, s.fees)
}

// snapshot returns the lines, summary and revision under a single lock.
func (s *CartService) snapshot() ([]domain.CartEntry, domain.OrderSummary, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Entries(), domain.Summarize(s.cart, s.fees), s.revision
}

// beginCommit locks the cart if it is still at revision.
func (s *CartService) beginCommit(revision uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		return fmt.Errorf("cart: %w", domain.ErrCartLocked)
	}
	if s.revision != revision {
		return fmt.Errorf("cart revision[%d] != [%d]: %w", s.revision, revision, domain.ErrCartChanged)
	}
	s.locked = true

	return nil
}

// finishCommit releases the lock taken by beginCommit, clearing the cart when
// the order was recorded.
func (s *CartService) finishCommit(committed bool) {
	s.mu.Lock()
	s.locked = false
	if !committed {
		s.mu.Unlock()
		return
	}
	lines := s.commitLocked()
	s.mu.Unlock()

	s.log.Info().Int("lines", lines).Msg("cart committed")
}

func (s *CartService) commitLocked() int {
	lines := s.cart.Len()
	s.touch(lines > 0)
	s.cart.Clear()
	return lines
}

func (s *CartService) addLocked(item domain.MenuItem, quantity int, selected []domain.SelectedOption) (domain.CartEntry, error) {
	if err := s.writable(); err != nil {
		return domain.CartEntry{}, err
	}

	entry, err := s.cart.AddItem(item, quantity, selected)
	if err != nil {
		return domain.CartEntry{}, fmt.Errorf("cart.AddItem: %w", err)
	}
	s.touch(true)

	return entry, nil
}

func (s *CartService) resolve(ctx context.Context, restaurantID, itemID string, picks map[string]string) ([]domain.SelectedOption, domain.MenuItem, error) {
	item, err := s.catalog.FindMenuItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, domain.MenuItem{}, fmt.Errorf("catalog.FindMenuItem: %w", err)
	}

	selected, err := domain.ResolveSelection(item, picks)
	if err != nil {
		return nil, domain.MenuItem{}, fmt.Errorf("domain.ResolveSelection: %w", err)
	}

	return selected, item, nil
}

// writable must be called with mu held.
func (s *CartService) writable() error {
	if s.locked {
		return fmt.Errorf("cart: %w", domain.ErrCartLocked)
	}
	return nil
}

// touch must be called with mu held.
func (s *CartService) touch(changed bool) {
	if changed {
		s.revision++
	}
}
