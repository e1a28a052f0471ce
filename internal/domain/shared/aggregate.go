package shared

// BaseAggregateRoot extends BaseEntity with a version counter used for
// optimistic locking. Repositories compare the version on update and
// report ErrConcurrencyConflict when it moved underneath them.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// IncrementVersion bumps the version after a state change.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}
