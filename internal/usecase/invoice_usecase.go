package usecase

import (
	"context"
	"errors"
	"time"

	"photostock/internal/domain/analysis"
	"photostock/internal/domain/entities"
	"photostock/internal/domain/search"
	"photostock/internal/usecase/interfaces"
)

var (
	ErrResultNotFound = errors.New("result not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrEmptyBatch     = errors.New("empty save batch")
	ErrEmptyInvNumber = errors.New("empty invoice number")
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// SaveEntry is one validated entry arriving at the save boundary,
// carrying its image bytes alongside the parsed fields.
type SaveEntry struct {
	InvNumber       string
	Total           string
	OriginalContent string
	NasLocation     string
	ImageName       string
	ImageData       []byte
}

// SaveError reports why one entry of a batch could not be saved.
type SaveError struct {
	InvNumber string `json:"invNumber"`
	Message   string `json:"message"`
}

// IInvoiceUseCase exposes the read/write catalog operations.
type IInvoiceUseCase interface {
	List(ctx context.Context, page, perPage int, rawSearch string) ([]entities.Result, int, error)
	Save(ctx context.Context, batch []SaveEntry) ([]SaveError, error)
	UpdateStatus(ctx context.Context, invNumber string, status entities.Status) (entities.Result, error)
	Delete(ctx context.Context, invNumber string) error
	OverwriteImage(ctx context.Context, invNumber, filename string, data []byte) (entities.Result, error)
}

type InvoiceUseCase struct {
	repo  interfaces.IResultRepository
	store interfaces.IImageStore
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IResultRepository, store interfaces.IImageStore) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, store: store}
}

// List returns one display-ordered page of the catalog plus the filtered
// total. The whole snapshot is scanned, filtered and ranked in memory;
// the catalog is small enough that this beats pushing the tokenized
// matching into the store.
func (u *InvoiceUseCase) List(ctx context.Context, page, perPage int, rawSearch string) ([]entities.Result, int, error) {
	if page <= 0 {
		page = defaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	results, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	terms := search.Tokenize(search.PreprocessQuery(rawSearch))
	filtered := search.Filter(results, terms)
	search.Sort(filtered)

	total := len(filtered)
	offset := (page - 1) * perPage
	if offset >= total {
		return []entities.Result{}, total, nil
	}
	end := offset + perPage
	if end > total {
		end = total
	}
	return filtered[offset:end], total, nil
}

// Save persists a batch of entries after re-running validation server
// side. Either every entry is valid and the whole batch is stored, or
// nothing is stored and the per-entry failures come back.
func (u *InvoiceUseCase) Save(ctx context.Context, batch []SaveEntry) ([]SaveError, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	invNumbers := make([]string, len(batch))
	for i, e := range batch {
		invNumbers[i] = e.InvNumber
	}
	duplicates, err := u.repo.FindExisting(ctx, invNumbers)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(duplicates))
	for _, inv := range duplicates {
		existing[inv] = true
	}

	var failures []SaveError
	for _, e := range batch {
		entry := entities.Entry{
			InvNumber:       e.InvNumber,
			Total:           e.Total,
			OriginalContent: e.OriginalContent,
			NasLocation:     e.NasLocation,
		}
		if len(e.ImageData) > 0 {
			entry.ImageName = e.ImageName
		}
		if msg := analysis.Validate(entry, existing); msg != "" {
			failures = append(failures, SaveError{InvNumber: e.InvNumber, Message: msg})
		}
	}
	if len(failures) > 0 {
		return failures, nil
	}

	now := time.Now().UTC()
	for _, e := range batch {
		imagePath, err := u.store.Save(e.ImageName, e.ImageData)
		if err != nil {
			return nil, err
		}

		result := entities.Result{
			InvNumber:       e.InvNumber,
			Total:           e.Total,
			OriginalContent: e.OriginalContent,
			NasLocation:     e.NasLocation,
			ImagePath:       imagePath,
			Status:          entities.StatusReady,
			CreatedAt:       now,
		}
		if _, err := u.repo.Save(ctx, result); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// UpdateStatus moves a result to a new workflow state.
func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, invNumber string, status entities.Status) (entities.Result, error) {
	if invNumber == "" {
		return entities.Result{}, ErrEmptyInvNumber
	}
	if !status.IsValid() {
		return entities.Result{}, ErrInvalidStatus
	}

	result, err := u.repo.UpdateStatus(ctx, invNumber, status)
	if err != nil {
		return entities.Result{}, err
	}
	if result.InvNumber == "" {
		return entities.Result{}, ErrResultNotFound
	}
	return result, nil
}

// Delete removes a result and its stored image.
func (u *InvoiceUseCase) Delete(ctx context.Context, invNumber string) error {
	if invNumber == "" {
		return ErrEmptyInvNumber
	}

	result, err := u.repo.GetByInvNumber(ctx, invNumber)
	if err != nil {
		return err
	}
	if result.InvNumber == "" {
		return ErrResultNotFound
	}

	if result.ImagePath != "" {
		if err := u.store.Remove(result.ImagePath); err != nil {
			return err
		}
	}
	return u.repo.Delete(ctx, invNumber)
}

// OverwriteImage replaces a stored photo with a smaller rendition and
// points the result at the new path.
func (u *InvoiceUseCase) OverwriteImage(ctx context.Context, invNumber, filename string, data []byte) (entities.Result, error) {
	if invNumber == "" {
		return entities.Result{}, ErrEmptyInvNumber
	}

	imagePath, err := u.store.Overwrite(filename, data)
	if err != nil {
		return entities.Result{}, err
	}

	result, err := u.repo.UpdateImagePath(ctx, invNumber, imagePath)
	if err != nil {
		return entities.Result{}, err
	}
	if result.InvNumber == "" {
		return entities.Result{}, ErrResultNotFound
	}
	return result, nil
}
