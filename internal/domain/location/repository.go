package location

import "context"

// LocationRepository - interface for the locations table
type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)
	GetByID(ctx context.Context, id string) (Location, error)
	List(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, req UpdateLocationRequest) error
	Delete(ctx context.Context, id string) error
}
