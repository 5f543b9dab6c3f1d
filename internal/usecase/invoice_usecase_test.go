package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"photostock/internal/domain/entities"
	mock_interfaces "photostock/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const validContent = `INV#: AG497-24
CPU: INTEL CORE I5-14400F
GPU: RTX 4060 8GB
CASE: LIAN LI LANCOOL 216
MOBO: MSI PRO B760M-A
RAM: KINGSTON FURY 32GB
PSU: FSP HV PRO 650W
Total: RM7,660`

func validSaveEntry(inv string) SaveEntry {
	return SaveEntry{
		InvNumber:       inv,
		Total:           "RM7660",
		OriginalContent: validContent,
		NasLocation:     "W:\\2024\\241004_Batch",
		ImageName:       inv + ".jpg",
		ImageData:       []byte{0xff, 0xd8},
	}
}

func TestInvoiceUseCase_List(t *testing.T) {
	snapshot := []entities.Result{
		{InvNumber: "AA1", Total: "RM5000", OriginalContent: validContent, NasLocation: "W:\\2024\\240110_Batch", Status: entities.StatusReady},
		{InvNumber: "BB2", Total: "RM3000", OriginalContent: validContent, NasLocation: "W:\\2024\\240110_Batch", Status: entities.StatusReady},
		{InvNumber: "CC3", Total: "RM9000", OriginalContent: validContent, NasLocation: "W:\\2024\\240101_Batch", Status: entities.StatusPosted},
	}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db"))

		_, _, err := uc.List(context.Background(), 1, 10, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("orders newest batch first, cheapest first within batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(snapshot, nil)

		page, total, err := uc.List(context.Background(), 1, 10, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 {
			t.Fatalf("expected total 3, got %d", total)
		}
		got := []string{page[0].InvNumber, page[1].InvNumber, page[2].InvNumber}
		want := []string{"BB2", "AA1", "CC3"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("search narrows results but keeps full match count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(snapshot, nil)

		page, total, err := uc.List(context.Background(), 1, 10, "Posted")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 || len(page) != 1 || page[0].InvNumber != "CC3" {
			t.Fatalf("unexpected search result: total=%d page=%v", total, page)
		}
	})

	t.Run("pagination clamps and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(snapshot, nil).Times(2)

		page, total, err := uc.List(context.Background(), 2, 2, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 || len(page) != 1 || page[0].InvNumber != "CC3" {
			t.Fatalf("unexpected second page: total=%d page=%v", total, page)
		}

		page, total, err = uc.List(context.Background(), 5, 2, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 || len(page) != 0 {
			t.Fatalf("expected empty page past the end, got %v", page)
		}
	})
}

func TestInvoiceUseCase_Save(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.Save(context.Background(), nil)
		if !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("duplicate lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().FindExisting(gomock.Any(), []string{"AG49724"}).Return(nil, errors.New("db"))

		_, err := uc.Save(context.Background(), []SaveEntry{validSaveEntry("AG49724")})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("rejects whole batch when one entry fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)

		bad := validSaveEntry("BH10224")
		bad.ImageData = nil
		batch := []SaveEntry{validSaveEntry("AG49724"), bad}

		repo.EXPECT().FindExisting(gomock.Any(), []string{"AG49724", "BH10224"}).Return(nil, nil)

		failures, err := uc.Save(context.Background(), batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(failures) != 1 {
			t.Fatalf("expected 1 failure, got %v", failures)
		}
		if failures[0].InvNumber != "BH10224" || failures[0].Message != "Missing image, ensure image filename matches INV#." {
			t.Fatalf("unexpected failure: %+v", failures[0])
		}
	})

	t.Run("reports duplicates without storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)

		repo.EXPECT().FindExisting(gomock.Any(), []string{"AG49724"}).Return([]string{"AG49724"}, nil)

		failures, err := uc.Save(context.Background(), []SaveEntry{validSaveEntry("AG49724")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(failures) != 1 || failures[0].Message != "INV#: AG49724 is already in the database." {
			t.Fatalf("unexpected failures: %+v", failures)
		}
	})

	t.Run("stores images then results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)

		entry := validSaveEntry("AG49724")
		repo.EXPECT().FindExisting(gomock.Any(), []string{"AG49724"}).Return(nil, nil)
		store.EXPECT().Save(entry.ImageName, entry.ImageData).Return("/uploads/1_ag49724.jpg", nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Result{})).DoAndReturn(
			func(_ context.Context, r entities.Result) (entities.Result, error) {
				if r.InvNumber != "AG49724" || r.Total != "RM7660" || r.ImagePath != "/uploads/1_ag49724.jpg" {
					t.Fatalf("unexpected result: %+v", r)
				}
				if r.Status != entities.StatusReady {
					t.Fatalf("expected Ready status, got %s", r.Status)
				}
				if r.CreatedAt.IsZero() || r.CreatedAt.Location() != time.UTC {
					t.Fatalf("expected UTC creation time, got %v", r.CreatedAt)
				}
				return r, nil
			},
		)

		failures, err := uc.Save(context.Background(), []SaveEntry{entry})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if failures != nil {
			t.Fatalf("expected no failures, got %+v", failures)
		}
	})

	t.Run("store error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)

		entry := validSaveEntry("AG49724")
		repo.EXPECT().FindExisting(gomock.Any(), []string{"AG49724"}).Return(nil, nil)
		store.EXPECT().Save(entry.ImageName, entry.ImageData).Return("", errors.New("disk"))

		_, err := uc.Save(context.Background(), []SaveEntry{entry})
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("empty inv number", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "", entities.StatusPosted)
		if !errors.Is(err, ErrEmptyInvNumber) {
			t.Fatalf("expected ErrEmptyInvNumber, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "AG49724", entities.Status("Archived"))
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "AG49724", entities.StatusPosted).Return(entities.Result{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "AG49724", entities.StatusPosted)
		if !errors.Is(err, ErrResultNotFound) {
			t.Fatalf("expected ErrResultNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		expected := entities.Result{InvNumber: "AG49724", Status: entities.StatusScheduled}
		repo.EXPECT().UpdateStatus(gomock.Any(), "AG49724", entities.StatusScheduled).Return(expected, nil)

		res, err := uc.UpdateStatus(context.Background(), "AG49724", entities.StatusScheduled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusScheduled {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestInvoiceUseCase_Delete(t *testing.T) {
	t.Run("empty inv number", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		err := uc.Delete(context.Background(), "")
		if !errors.Is(err, ErrEmptyInvNumber) {
			t.Fatalf("expected ErrEmptyInvNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil)
		repo.EXPECT().GetByInvNumber(gomock.Any(), "AG49724").Return(entities.Result{}, nil)

		err := uc.Delete(context.Background(), "AG49724")
		if !errors.Is(err, ErrResultNotFound) {
			t.Fatalf("expected ErrResultNotFound, got %v", err)
		}
	})

	t.Run("removes image then row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)

		repo.EXPECT().GetByInvNumber(gomock.Any(), "AG49724").Return(entities.Result{InvNumber: "AG49724", ImagePath: "/uploads/ag.jpg"}, nil)
		store.EXPECT().Remove("/uploads/ag.jpg").Return(nil)
		repo.EXPECT().Delete(gomock.Any(), "AG49724").Return(nil)

		if err := uc.Delete(context.Background(), "AG49724"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skips image removal when no path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)

		repo.EXPECT().GetByInvNumber(gomock.Any(), "AG49724").Return(entities.Result{InvNumber: "AG49724"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "AG49724").Return(nil)

		if err := uc.Delete(context.Background(), "AG49724"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_OverwriteImage(t *testing.T) {
	t.Run("empty inv number", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil)
		_, err := uc.OverwriteImage(context.Background(), "", "ag.jpg", []byte{1})
		if !errors.Is(err, ErrEmptyInvNumber) {
			t.Fatalf("expected ErrEmptyInvNumber, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(nil, store)
		store.EXPECT().Overwrite("ag.jpg", []byte{1}).Return("", errors.New("disk"))

		_, err := uc.OverwriteImage(context.Background(), "AG49724", "ag.jpg", []byte{1})
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)
		store.EXPECT().Overwrite("ag.jpg", []byte{1}).Return("/uploads/ag.jpg", nil)
		repo.EXPECT().UpdateImagePath(gomock.Any(), "AG49724", "/uploads/ag.jpg").Return(entities.Result{}, nil)

		_, err := uc.OverwriteImage(context.Background(), "AG49724", "ag.jpg", []byte{1})
		if !errors.Is(err, ErrResultNotFound) {
			t.Fatalf("expected ErrResultNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResultRepository(ctrl)
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewInvoiceUseCase(repo, store)
		store.EXPECT().Overwrite("ag.jpg", []byte{1}).Return("/uploads/ag.jpg", nil)
		expected := entities.Result{InvNumber: "AG49724", ImagePath: "/uploads/ag.jpg"}
		repo.EXPECT().UpdateImagePath(gomock.Any(), "AG49724", "/uploads/ag.jpg").Return(expected, nil)

		res, err := uc.OverwriteImage(context.Background(), "AG49724", "ag.jpg", []byte{1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ImagePath != "/uploads/ag.jpg" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
