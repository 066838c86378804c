// Package storerepo persists store records and their delivery policies. The
// policy is flattened into the store row; the flat_fee column decides which
// fee scheme RestoreStore rebuilds.
package storerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/store"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// StoreDTO represents the database structure for persisting stores.
type StoreDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Lat      float64   `gorm:"type:double precision;not null"`
	Lon      float64   `gorm:"type:double precision;not null"`
	MinOrder decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	FlatFee  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	BaseFee  decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	PerKmFee decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	FreeOver *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Accepted pq.StringArray   `gorm:"type:text[];not null"`
}

// TableName overrides GORM's default naming convention to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	policy := aggregate.Policy()

	accepted := make(pq.StringArray, 0, len(policy.AcceptedTypes()))
	for _, t := range policy.AcceptedTypes() {
		accepted = append(accepted, t.String())
	}

	dto := StoreDTO{
		ID:       aggregate.ID().Bytes(),
		OwnerID:  aggregate.OwnerID().Bytes(),
		Name:     aggregate.Name(),
		Lat:      aggregate.Location().Lat(),
		Lon:      aggregate.Location().Lon(),
		MinOrder: policy.MinimumOrder().Amount(),
		BaseFee:  policy.BaseFee().Amount(),
		PerKmFee: policy.PerKmFee().Amount(),
		Accepted: accepted,
	}

	if flat, ok := policy.FlatFee(); ok {
		amount := flat.Amount()
		dto.FlatFee = &amount
	}
	if freeOver, ok := policy.FreeOver(); ok {
		amount := freeOver.Amount()
		dto.FreeOver = &amount
	}

	return dto
}

// toDomain converts a database DTO to a store aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return nil, err
	}

	policy, err := policyToDomain(dto)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, ownerID, dto.Name, location, policy)
}

func policyToDomain(dto StoreDTO) (store.DeliveryPolicy, error) {
	minOrder, err := kernel.NewMoney(dto.MinOrder)
	if err != nil {
		return store.DeliveryPolicy{}, err
	}

	var freeOver *kernel.Money
	if dto.FreeOver != nil {
		threshold, overErr := kernel.NewMoney(*dto.FreeOver)
		if overErr != nil {
			return store.DeliveryPolicy{}, overErr
		}
		freeOver = &threshold
	}

	accepted := make([]kernel.FulfillmentType, 0, len(dto.Accepted))
	for _, raw := range dto.Accepted {
		t, typeErr := kernel.FulfillmentTypeFromString(raw)
		if typeErr != nil {
			return store.DeliveryPolicy{}, typeErr
		}
		accepted = append(accepted, t)
	}

	if dto.FlatFee != nil {
		flatFee, feeErr := kernel.NewMoney(*dto.FlatFee)
		if feeErr != nil {
			return store.DeliveryPolicy{}, feeErr
		}
		return store.NewFlatFeePolicy(minOrder, flatFee, freeOver, accepted)
	}

	baseFee, err := kernel.NewMoney(dto.BaseFee)
	if err != nil {
		return store.DeliveryPolicy{}, err
	}
	perKmFee, err := kernel.NewMoney(dto.PerKmFee)
	if err != nil {
		return store.DeliveryPolicy{}, err
	}
	return store.NewDistanceFeePolicy(minOrder, baseFee, perKmFee, freeOver, accepted)
}
