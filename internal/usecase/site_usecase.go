package usecase

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/domain"
	"github.com/SpirahlDev/sig-backend/internal/domain/repository"
	"github.com/SpirahlDev/sig-backend/internal/pkg/errors"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
	"github.com/SpirahlDev/sig-backend/internal/pkg/utils"
	"github.com/SpirahlDev/sig-backend/internal/pkg/validator"
	"github.com/SpirahlDev/sig-backend/internal/usecase/dto"
)

// sitePhotoDir is the blob store subdirectory holding site photos.
const sitePhotoDir = "sites"

// DefaultNearbyRadiusKm is the search radius applied when the caller
// does not provide one.
const DefaultNearbyRadiusKm = 20.0

// SiteUseCase handles the business logic of tourist and heritage sites.
// The creation and update flows are transactional across the site row,
// its photo rows and the attachment links; blob writes happen inside
// the transaction window and are compensated by deletion when the
// transaction rolls back.
type SiteUseCase struct {
	*CrudUseCase[domain.Site]

	sites   repository.SiteRepository
	photos  repository.PhotoRepository
	types   repository.SiteTypeRepository
	storage repository.FileStorage
	tx      repository.Transactor
	logger  *zap.Logger
}

func NewSiteUseCase(
	sites repository.SiteRepository,
	photos repository.PhotoRepository,
	types repository.SiteTypeRepository,
	storage repository.FileStorage,
	tx repository.Transactor,
	spec *queryparams.Spec,
	logger *zap.Logger,
) *SiteUseCase {
	return &SiteUseCase{
		CrudUseCase: NewCrudUseCase[domain.Site](sites, spec, logger),
		sites:       sites,
		photos:      photos,
		types:       types,
		storage:     storage,
		tx:          tx,
		logger:      logger,
	}
}

// Create stores a new site together with its uploaded photos. Nothing
// is written, to the database or to the blob store, when validation
// fails. A failure while attaching photos rolls the whole site back and
// removes the blobs already written.
func (uc *SiteUseCase) Create(ctx context.Context, req *dto.CreateSiteRequest, images []*multipart.FileHeader) (*domain.Site, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if err := uc.checkSiteType(ctx, req.SiteTypeID); err != nil {
		return nil, err
	}

	var created *domain.Site
	var uploaded []string

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		site, err := uc.sites.Insert(ctx, req.Values())
		if err != nil {
			return err
		}

		if err := uc.attachImages(ctx, site.ID, images, &uploaded); err != nil {
			return err
		}

		created = site
		return nil
	})
	if err != nil {
		uc.cleanupBlobs(ctx, uploaded)
		return nil, err
	}

	uc.logger.Info("Site created",
		zap.Int64("id", created.ID),
		zap.String("name", created.Name),
		zap.Int("photos", len(images)),
	)

	return uc.sites.GetByID(ctx, created.ID)
}

// Update applies a partial update and optionally attaches more photos.
// Coordinate bounds are checked against the merged pair, so moving only
// the latitude still validates against the stored longitude.
func (uc *SiteUseCase) Update(ctx context.Context, id int64, req *dto.UpdateSiteRequest, images []*multipart.FileHeader) (*domain.Site, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	current, err := uc.sites.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Lat != nil || req.Lon != nil {
		lat, lon := current.Lat, current.Lon
		if req.Lat != nil {
			lat = *req.Lat
		}
		if req.Lon != nil {
			lon = *req.Lon
		}
		if !utils.ValidateCoordinates(lat, lon) {
			return nil, errors.ErrInvalidCoordinates
		}
	}
	if err := uc.checkSiteType(ctx, req.SiteTypeID); err != nil {
		return nil, err
	}

	var uploaded []string

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if values := req.Values(); len(values) > 0 {
			if _, err := uc.sites.Update(ctx, id, values); err != nil {
				return err
			}
		}
		return uc.attachImages(ctx, id, images, &uploaded)
	})
	if err != nil {
		uc.cleanupBlobs(ctx, uploaded)
		return nil, err
	}

	uc.logger.Info("Site updated", zap.Int64("id", id))

	return uc.sites.GetByID(ctx, id)
}

// DetachPhoto removes one photo from a site. The stored file is removed
// first; a blob store failure is logged and tolerated, so a file already
// gone by hand does not pin the database record forever.
func (uc *SiteUseCase) DetachPhoto(ctx context.Context, siteID, photoID int64) (bool, error) {
	attachment, err := uc.photos.GetAttachment(ctx, siteID, photoID)
	if err != nil {
		return false, err
	}
	if attachment == nil {
		return false, nil
	}

	photo, err := uc.photos.GetByID(ctx, photoID)
	if err != nil {
		return false, err
	}

	if err := uc.storage.Delete(ctx, photo.URL); err != nil {
		uc.logger.Warn("Failed to delete photo blob",
			zap.Int64("photo_id", photoID),
			zap.String("url", photo.URL),
			zap.Error(err),
		)
	}

	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.photos.Detach(ctx, siteID, photoID); err != nil {
			return err
		}
		return uc.photos.Delete(ctx, photoID)
	})
	if err != nil {
		return false, err
	}

	uc.logger.Info("Photo detached",
		zap.Int64("site_id", siteID),
		zap.Int64("photo_id", photoID),
	)
	return true, nil
}

// FindNearby returns the sites within the requested radius of a point,
// closest first.
func (uc *SiteUseCase) FindNearby(ctx context.Context, req *dto.NearbySitesRequest) ([]domain.Site, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	radius := DefaultNearbyRadiusKm
	if req.Radius != nil {
		radius = *req.Radius
	}
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRadius
	}

	sites, err := uc.sites.FindNearby(ctx, *req.Lat, *req.Lon, radius)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Nearby search completed",
		zap.Float64("lat", *req.Lat),
		zap.Float64("lon", *req.Lon),
		zap.Float64("radius_km", radius),
		zap.Int("results", len(sites)),
	)
	return sites, nil
}

func (uc *SiteUseCase) checkSiteType(ctx context.Context, typeID *int64) error {
	if typeID == nil {
		return nil
	}
	if _, err := uc.types.GetByID(ctx, *typeID); err != nil {
		return err
	}
	return nil
}

// attachImages uploads each file and links the resulting photo record to
// the site. Paths of files already written are collected through
// uploaded so the caller can compensate on rollback.
func (uc *SiteUseCase) attachImages(ctx context.Context, siteID int64, images []*multipart.FileHeader, uploaded *[]string) error {
	for _, image := range images {
		stored, err := uc.storage.Upload(ctx, image, sitePhotoDir)
		if err != nil {
			return err
		}
		*uploaded = append(*uploaded, stored.Path)

		photo, err := uc.photos.Create(ctx, stored.URL, stored.Size)
		if err != nil {
			return err
		}
		if err := uc.photos.Attach(ctx, siteID, photo.ID); err != nil {
			return err
		}
	}
	return nil
}

// cleanupBlobs removes files written during a transaction that rolled
// back. Failures here only leave unreferenced files behind, so they are
// logged rather than returned.
func (uc *SiteUseCase) cleanupBlobs(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := uc.storage.Delete(ctx, path); err != nil {
			uc.logger.Warn("Failed to clean up orphaned blob",
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
}
