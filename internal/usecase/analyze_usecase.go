package usecase

import (
	"context"
	"errors"
	"strings"

	"photostock/internal/domain/analysis"
	"photostock/internal/domain/entities"
	"photostock/internal/usecase/interfaces"
)

var (
	ErrEmptyText        = errors.New("empty batch text")
	ErrEmptyNasLocation = errors.New("empty nas location")
	ErrNoInvNumbers     = errors.New("no invoice numbers provided")
)

// IAnalyzeUseCase exposes the analyze-side pipeline: pasted spec text and
// uploaded filenames in, validated preview entries out.
type IAnalyzeUseCase interface {
	Analyze(ctx context.Context, text, nasLocation string, imageNames []string) ([]entities.Entry, error)
	CheckDuplicates(ctx context.Context, invNumbers []string) ([]string, error)
}

type AnalyzeUseCase struct {
	repo interfaces.IResultRepository
}

var _ IAnalyzeUseCase = (*AnalyzeUseCase)(nil)

func NewAnalyzeUseCase(repo interfaces.IResultRepository) *AnalyzeUseCase {
	return &AnalyzeUseCase{repo: repo}
}

// Analyze parses text into entries, pairs each with an uploaded image by
// filename, and validates against the catalog. Entries come back with
// ErrorMessage set for anything that would block a save; parsing itself
// never fails, so text without invoice blocks yields an empty slice.
func (u *AnalyzeUseCase) Analyze(ctx context.Context, text, nasLocation string, imageNames []string) ([]entities.Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if strings.TrimSpace(nasLocation) == "" {
		return nil, ErrEmptyNasLocation
	}

	entries := analysis.Parse(text, nasLocation)
	if len(entries) == 0 {
		return entries, nil
	}

	invNumbers := make([]string, len(entries))
	for i, e := range entries {
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

	for i := range entries {
		if name, ok := analysis.MatchImage(entries[i].InvNumber, imageNames); ok {
			entries[i].ImageName = name
		}
		entries[i].ErrorMessage = analysis.Validate(entries[i], existing)
	}
	return entries, nil
}

// CheckDuplicates returns the subset of candidate invoice numbers already
// present in the catalog.
func (u *AnalyzeUseCase) CheckDuplicates(ctx context.Context, invNumbers []string) ([]string, error) {
	if len(invNumbers) == 0 {
		return nil, ErrNoInvNumbers
	}
	return u.repo.FindExisting(ctx, invNumbers)
}
