package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/kiranakart/auth-service/internal/pkg/apperrors"
	"github.com/kiranakart/auth-service/internal/pkg/logger"
	"github.com/kiranakart/auth-service/internal/pkg/models"
	"github.com/kiranakart/auth-service/internal/utils"
	"github.com/kiranakart/auth-service/services/auth"
)

// validationTTL coalesces repeated allow-list checks for the same email
// while an actor is still typing it
const validationTTL = 500 * time.Millisecond

type validationEntry struct {
	err     error
	checked time.Time
}

// registry fronts the authority's sub-admin allow list with a local
// cache. The authority stays the source of truth; the cache lets the
// list survive a flaky link and backs the duplicate check that runs
// before any create call.
type registry struct {
	gw auth.AuthGW

	mu     sync.Mutex
	cache  []models.AuthorizationRecord
	cached bool
	recent map[string]validationEntry
}

func newRegistry(gw auth.AuthGW) *registry {
	return &registry{
		gw:     gw,
		recent: make(map[string]validationEntry),
	}
}

// List fetches the allow list, falling back to the last good copy when
// the authority is unreachable
func (r *registry) List(ctx context.Context) ([]models.AuthorizationRecord, error) {
	records, err := r.gw.ListSubAdmins(ctx)
	if err != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if apperrors.IsNetwork(err) && r.cached {
			logger.Warn("Serving cached sub-admin list, authority unreachable",
				logger.ErrorField(err))
			return append([]models.AuthorizationRecord(nil), r.cache...), nil
		}
		return nil, err
	}

	r.mu.Lock()
	r.cache = records
	r.cached = true
	r.mu.Unlock()

	return records, nil
}

// Create adds an email to the allow list. Duplicates are caught against
// the cached list before the authority is asked, so an obvious repeat
// costs no network round trip.
func (r *registry) Create(ctx context.Context, email string) (*models.AuthorizationRecord, error) {
	email = utils.NormalizeEmail(email)
	if !utils.ValidEmailFormat(email) {
		return nil, apperrors.Validation("Please enter a valid email address")
	}

	r.mu.Lock()
	for _, rec := range r.cache {
		if utils.NormalizeEmail(rec.Email) == email {
			r.mu.Unlock()
			return nil, apperrors.AlreadyExists("Email already authorized")
		}
	}
	r.mu.Unlock()

	record, err := r.gw.CreateSubAdmin(ctx, email)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache = append(r.cache, *record)
	r.cached = true
	delete(r.recent, email)
	r.mu.Unlock()

	return record, nil
}

// Remove deletes an allow-list entry. When the authority is unreachable
// the entry is dropped from the cache anyway so the actor's view stays
// responsive; the next successful List reconciles.
func (r *registry) Remove(ctx context.Context, id string) error {
	err := r.gw.RemoveSubAdmin(ctx, id)
	if err != nil && !apperrors.IsNetwork(err) {
		return err
	}

	r.mu.Lock()
	for i, rec := range r.cache {
		if rec.ID == id {
			r.cache = append(r.cache[:i], r.cache[i+1:]...)
			break
		}
	}
	r.recent = make(map[string]validationEntry)
	r.mu.Unlock()

	if err != nil {
		logger.Warn("Sub-admin removed locally, authority unreachable",
			logger.String("id", id),
			logger.ErrorField(err))
	}
	return nil
}

// ValidateEmail reports whether email is pre-authorized to register as
// sub-admin. Results are remembered briefly so repeated checks while
// the actor edits the field do not hammer the authority.
func (r *registry) ValidateEmail(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)
	if !utils.ValidEmailFormat(email) {
		return apperrors.Validation("Please enter a valid email address")
	}

	r.mu.Lock()
	if entry, ok := r.recent[email]; ok && time.Since(entry.checked) < validationTTL {
		r.mu.Unlock()
		return entry.err
	}
	r.mu.Unlock()

	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	var result error
	found := false
	for _, rec := range records {
		if utils.NormalizeEmail(rec.Email) == email {
			found = true
			break
		}
	}
	if !found {
		result = apperrors.Authorization("This email is not authorized for sub-admin registration")
	}

	r.mu.Lock()
	r.recent[email] = validationEntry{err: result, checked: time.Now()}
	r.mu.Unlock()

	return result
}

// editDebounce is how long the signup email field must sit untouched
// before an edit-triggered check fires
const editDebounce = 500 * time.Millisecond

// emailValidator schedules allow-list checks around signup-field
// activity. Edits coalesce behind a short delay and every new trigger
// cancels the check the previous one left pending, so at most one
// lookup is in flight for the field and only the latest result is ever
// reported.
type emailValidator struct {
	registry *registry

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	debounce   time.Duration
}

func newEmailValidator(r *registry) *emailValidator {
	return &emailValidator{registry: r, debounce: editDebounce}
}

// OnEdit notes a keystroke on the email field. The check runs once the
// edits pause; report receives the result unless a newer trigger
// superseded it first.
func (v *emailValidator) OnEdit(email string, report func(error)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	gen := v.generation
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.debounce, func() {
		v.check(gen, email, report)
	})
}

// OnBlur cancels any check a pending edit scheduled and validates the
// field immediately
func (v *emailValidator) OnBlur(ctx context.Context, email string) error {
	v.mu.Lock()
	v.generation++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.mu.Unlock()

	return v.registry.ValidateEmail(ctx, email)
}

func (v *emailValidator) check(gen uint64, email string, report func(error)) {
	err := v.registry.ValidateEmail(context.Background(), email)

	v.mu.Lock()
	stale := v.generation != gen
	v.mu.Unlock()
	if stale || report == nil {
		return
	}
	report(err)
}
