package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/apperror"
	"github.com/FarazAhsan11/candidate-management/pkg/storage"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	blobs    storage.BlobStore
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, blobs storage.BlobStore, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		blobs:    blobs,
		validate: validate,
	}
}

// Create validates the payload in create mode, merges an optional resume
// upload, and inserts the record. Validation and upload must both succeed
// before persistence is attempted; there are no partial writes.
func (u *candidateUsecase) Create(ctx context.Context, input *domain.CandidateInput, resume *domain.UploadedFile) (*domain.Candidate, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.ValidationFailed(validation.Issues(err))
	}

	candidate := input.ToCandidate()

	if resume != nil {
		ref, err := u.uploadResume(ctx, resume)
		if err != nil {
			return nil, err
		}
		candidate.ResumeFile = ref.URL
		candidate.ResumeFileName = ref.FileName
		candidate.ResumeFileType = ref.FileType
	}

	if err := u.repo.Create(ctx, candidate); err != nil {
		return nil, apperror.Storage("Error adding candidate", err)
	}
	return candidate, nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Storage("Error fetching candidate", err)
	}
	return candidate, nil
}

// Update applies a partial patch. Present fields are validated against the
// same rules as create mode; a new resume upload overwrites the three resume
// fields as a group.
func (u *candidateUsecase) Update(ctx context.Context, id string, input *domain.CandidateUpdateInput, resume *domain.UploadedFile) (*domain.Candidate, error) {
	input.Coerce()
	if issues := u.validateUpdate(input); len(issues) > 0 {
		return nil, apperror.ValidationFailed(issues)
	}

	patch := input.ToPatch()

	if resume != nil {
		ref, err := u.uploadResume(ctx, resume)
		if err != nil {
			return nil, err
		}
		patch.Resume = ref
	}

	candidate, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Storage("Error updating candidate", err)
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return apperror.Storage("Error deleting candidate", err)
	}
	return nil
}

// List executes the retrieval pipeline and assembles the page metadata.
// totalPages clamps to 1 so an empty collection still renders one page;
// an out-of-range page yields an empty slice, not an error.
func (u *candidateUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.ListResult, error) {
	q = q.Normalize()

	items, total, positions, err := u.repo.List(ctx, q)
	if err != nil {
		return nil, apperror.Storage("Error fetching candidates", err)
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return &domain.ListResult{
		Candidates: items,
		Positions:  positions,
		Pagination: domain.Pagination{
			TotalPages:  totalPages,
			CurrentPage: q.Page,
		},
	}, nil
}

// uploadResume is the attachment merge step: push the file to the blob store
// and produce the resume reference group. Any failure aborts the whole
// operation before the record is touched.
func (u *candidateUsecase) uploadResume(ctx context.Context, file *domain.UploadedFile) (*domain.ResumeRef, error) {
	if !storage.ValidResumeFile(file.FileName, file.ContentType) {
		return nil, apperror.ValidationFailed([]validation.FieldIssue{{
			Path:    "resume",
			Message: "resume must be a pdf, doc, docx or txt document",
		}})
	}

	body, err := file.Open()
	if err != nil {
		return nil, apperror.UploadFailed(err)
	}
	defer body.Close()

	key := fmt.Sprintf("resumes/%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(file.FileName)))
	url, err := u.blobs.Upload(ctx, key, file.ContentType, body)
	if err != nil {
		return nil, apperror.UploadFailed(err)
	}

	return &domain.ResumeRef{
		URL:      url,
		FileName: file.FileName,
		FileType: storage.MIMESubtype(file.ContentType),
	}, nil
}
