package readstore

import (
	"context"
	"log/slog"
	"strings"

	"hotel-pricing/internal/domain/hotel"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/infra/catalog"
	"hotel-pricing/internal/infra/converter"
	"hotel-pricing/internal/pkg/config"
)

// HotelReadStore serves hotels from a catalog loaded once at startup. The
// loaded hotels are never modified, so lookups need no locking.
type HotelReadStore struct {
	hotels map[string]*hotel.Hotel
}

func NewHotelReadStore(cfg config.Config, logger *slog.Logger) (*HotelReadStore, error) {
	f, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load hotel catalog", err)
	}

	store, err := NewHotelReadStoreFromFile(f)
	if err != nil {
		return nil, err
	}

	logger.Info("hotel catalog loaded", slog.String("path", cfg.Catalog.Path), slog.Int("hotels", len(store.hotels)))
	return store, nil
}

func NewHotelReadStoreFromFile(f *catalog.File) (*HotelReadStore, error) {
	hotels := make(map[string]*hotel.Hotel, len(f.Hotels))
	for _, rec := range f.Hotels {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			return nil, infra.WrapRepoErr("hotel without id in catalog", nil, infra.KindInvalidData)
		}
		if _, dup := hotels[id]; dup {
			return nil, infra.WrapRepoErr("duplicate hotel id "+id, nil, infra.KindDuplicateKey)
		}
		if err := checkRatePlanIDs(id, rec.RatePlans); err != nil {
			return nil, err
		}
		rec.ID = id
		hotels[id] = converter.HotelToDomain(rec)
	}
	return &HotelReadStore{hotels: hotels}, nil
}

// Plan ids are only unique within their hotel.
func checkRatePlanIDs(hotelID string, plans []catalog.RatePlanRecord) error {
	seen := make(map[string]struct{}, len(plans))
	for _, rp := range plans {
		planID := strings.TrimSpace(rp.ID)
		if _, dup := seen[planID]; dup {
			return infra.WrapRepoErr("duplicate rate plan id "+planID+" in hotel "+hotelID, nil, infra.KindDuplicateKey)
		}
		seen[planID] = struct{}{}
	}
	return nil
}

func (s *HotelReadStore) FindByID(_ context.Context, id string) (*hotel.Hotel, error) {
	h, ok := s.hotels[id]
	if !ok {
		return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return h, nil
}
