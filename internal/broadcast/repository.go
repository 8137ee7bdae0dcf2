// broadcast repository encapsulates the data access logic (interactions with the DB) related to live clients in Uplift.

package broadcast

import (
	"Uplift/internal/errors"
	"Uplift/pkg/db"
	"Uplift/pkg/log"
	"context"
)

type Repository interface {
	// AddSubject adds a live-subscribed subject identity to DB.
	// Helpful to initialize or scale if the server has to reload or a new instance has to be created.
	AddSubject(ctx context.Context, logger log.Logger, subjectID string) error
	// RemoveSubject removes a disconnected subject identity from DB.
	RemoveSubject(ctx context.Context, logger log.Logger, subjectID string) error
}

// repository struct of broadcast Repository.
// Object of this will be passed around from main to internal.
// Helps to access the repository layer interface and call methods.
type repository struct {
	db *db.RedisDB
}

// Returns a new instance of broadcast repository for other packages to access its interface.
func NewRepository(dbwrp *db.RedisDB) Repository {
	return repository{db: dbwrp}
}

// Returns nil if the subject identity got successfully added into the DB.
func (r repository) AddSubject(ctx context.Context, logger log.Logger, subjectID string) error {
	dberr := r.db.Client().SAdd(ctx, "live_subjects", subjectID).Err()
	if dberr != nil {
		logger.WithCtx(ctx).Error().Err(dberr).Msg("Error occured during execution of SAdd in broadcast.AddSubject")
		return errors.InternalServerError("")
	}
	return nil
}

// Returns nil if the subject identity got successfully removed from the DB.
func (r repository) RemoveSubject(ctx context.Context, logger log.Logger, subjectID string) error {
	dberr := r.db.Client().SRem(ctx, "live_subjects", subjectID).Err()
	if dberr != nil {
		logger.WithCtx(ctx).Error().Err(dberr).Msg("Error occured during execution of SRem in broadcast.RemoveSubject")
		return errors.InternalServerError("")
	}
	return nil
}
