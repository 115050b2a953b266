package store

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
)

// memoryStore keeps every collection in a process-local map. It exists so
// the service is fully usable with no database at all: construction seeds
// a few crops and mandi prices. Filters are full scans, which is fine for
// the handful of interactive users this backend is meant for.
type memoryStore struct {
	mx sync.RWMutex

	users         map[string]domain.User
	crops         map[string]domain.Crop
	detections    map[string]domain.DiseaseDetection
	listings      map[string]domain.Listing
	marketPrices  map[string]domain.MarketPrice
	weatherAlerts map[string]domain.WeatherAlert

	idCounter int
}

func NewMemoryStore() Store {
	s := &memoryStore{
		users:         make(map[string]domain.User),
		crops:         make(map[string]domain.Crop),
		detections:    make(map[string]domain.DiseaseDetection),
		listings:      make(map[string]domain.Listing),
		marketPrices:  make(map[string]domain.MarketPrice),
		weatherAlerts: make(map[string]domain.WeatherAlert),
		idCounter:     1,
	}
	s.seed()
	return s
}

func strptr(s string) *string { return &s }

func floatptr(f float64) *float64 { return &f }

func (s *memoryStore) seed() {
	now := time.Now().UTC()

	sampleCrops := []domain.Crop{
		{ID: "1", Name: "Rice", NameHindi: strptr("चावल"), NameTelugu: strptr("బియ్యం"), Category: "Grain", CurrentPrice: floatptr(2400), Unit: domain.DefaultUnit},
		{ID: "2", Name: "Wheat", NameHindi: strptr("गेहूं"), NameTelugu: strptr("గోధుమలు"), Category: "Grain", CurrentPrice: floatptr(2100), Unit: domain.DefaultUnit},
		{ID: "3", Name: "Cotton", NameHindi: strptr("कपास"), NameTelugu: strptr("పత్తి"), Category: "Cash Crop", CurrentPrice: floatptr(5800), Unit: domain.DefaultUnit},
		{ID: "4", Name: "Tomato", NameHindi: strptr("टमाटर"), NameTelugu: strptr("టమాటా"), Category: "Vegetable", CurrentPrice: floatptr(1200), Unit: domain.DefaultUnit},
	}
	for _, crop := range sampleCrops {
		s.crops[crop.ID] = crop
	}

	samplePrices := []domain.MarketPrice{
		{ID: "1", CropID: strptr("1"), Price: 2400, PriceChange: floatptr(12), Market: "Guntur Mandi", Date: now},
		{ID: "2", CropID: strptr("2"), Price: 2100, PriceChange: floatptr(5), Market: "Delhi Mandi", Date: now},
		{ID: "3", CropID: strptr("3"), Price: 5800, PriceChange: floatptr(-3), Market: "Ahmedabad Mandi", Date: now},
		{ID: "4", CropID: strptr("4"), Price: 1200, PriceChange: floatptr(8), Market: "Pune Mandi", Date: now},
	}
	for _, price := range samplePrices {
		s.marketPrices[price.ID] = price
	}

	s.idCounter = 10
}

func (s *memoryStore) nextID() string {
	id := strconv.Itoa(s.idCounter)
	s.idCounter++
	return id
}

func (s *memoryStore) Connected() bool { return false }

func (s *memoryStore) Close() {}

// newestFirst orders ids descending as a tiebreak: ids are sequential, so
// records created within the same timestamp tick still come back in
// reverse insertion order.
func newestFirst(a, b time.Time, aID, bID string) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	ai, _ := strconv.Atoi(aID)
	bi, _ := strconv.Atoi(bID)
	return ai > bi
}

func (s *memoryStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, constants.ErrNotFound
	}
	return &user, nil
}

func (s *memoryStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			user := user
			return &user, nil
		}
	}
	return nil, constants.ErrNotFound
}

func (s *memoryStore) CreateUser(_ context.Context, insert domain.InsertUser) (*domain.User, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	user := domain.User{
		ID:           s.nextID(),
		Username:     insert.Username,
		PasswordHash: insert.PasswordHash,
		Phone:        insert.Phone,
		Location:     insert.Location,
		Language:     insert.Language,
		CreatedAt:    time.Now().UTC(),
	}
	if user.Language == "" {
		user.Language = domain.LanguageEnglish
	}

	s.users[user.ID] = user
	return &user, nil
}

func (s *memoryStore) GetAllCrops(_ context.Context) ([]*domain.Crop, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	crops := make([]*domain.Crop, 0, len(s.crops))
	for _, crop := range s.crops {
		crop := crop
		crops = append(crops, &crop)
	}
	sort.Slice(crops, func(i, j int) bool { return crops[i].Name < crops[j].Name })
	return crops, nil
}

func (s *memoryStore) GetCrop(_ context.Context, id string) (*domain.Crop, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	crop, ok := s.crops[id]
	if !ok {
		return nil, constants.ErrNotFound
	}
	return &crop, nil
}

func (s *memoryStore) CreateCrop(_ context.Context, insert domain.InsertCrop) (*domain.Crop, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	crop := domain.Crop{
		ID:           s.nextID(),
		Name:         insert.Name,
		NameHindi:    insert.NameHindi,
		NameTelugu:   insert.NameTelugu,
		Category:     insert.Category,
		CurrentPrice: insert.CurrentPrice,
		Unit:         insert.Unit,
	}
	if crop.Unit == "" {
		crop.Unit = domain.DefaultUnit
	}

	s.crops[crop.ID] = crop
	return &crop, nil
}

func (s *memoryStore) CreateDiseaseDetection(_ context.Context, insert domain.InsertDiseaseDetection) (*domain.DiseaseDetection, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	detection := domain.DiseaseDetection{
		ID:              s.nextID(),
		UserID:          insert.UserID,
		CropID:          insert.CropID,
		ImageURL:        insert.ImageURL,
		DetectedDisease: insert.DetectedDisease,
		Confidence:      insert.Confidence,
		Treatment:       insert.Treatment,
		DetectedAt:      time.Now().UTC(),
	}

	s.detections[detection.ID] = detection
	return &detection, nil
}

func (s *memoryStore) GetUserDiseaseDetections(_ context.Context, userID string) ([]*domain.DiseaseDetection, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	detections := make([]*domain.DiseaseDetection, 0)
	for _, d := range s.detections {
		if d.UserID != userID {
			continue
		}
		d := d
		detections = append(detections, &d)
	}
	sort.Slice(detections, func(i, j int) bool {
		return newestFirst(detections[i].DetectedAt, detections[j].DetectedAt, detections[i].ID, detections[j].ID)
	})
	return detections, nil
}

func (s *memoryStore) GetAllListings(_ context.Context) ([]*domain.Listing, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	listings := make([]*domain.Listing, 0)
	for _, l := range s.listings {
		if !l.IsActive {
			continue
		}
		l := l
		listings = append(listings, &l)
	}
	sortListings(listings)
	return listings, nil
}

func (s *memoryStore) GetUserListings(_ context.Context, userID string) ([]*domain.Listing, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	listings := make([]*domain.Listing, 0)
	for _, l := range s.listings {
		if l.UserID != userID {
			continue
		}
		l := l
		listings = append(listings, &l)
	}
	sortListings(listings)
	return listings, nil
}

func sortListings(listings []*domain.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		return newestFirst(listings[i].CreatedAt, listings[j].CreatedAt, listings[i].ID, listings[j].ID)
	})
}

func (s *memoryStore) CreateListing(_ context.Context, insert domain.InsertListing) (*domain.Listing, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	listing := domain.Listing{
		ID:           s.nextID(),
		UserID:       insert.UserID,
		CropID:       insert.CropID,
		Quantity:     insert.Quantity,
		PricePerUnit: insert.PricePerUnit,
		Location:     insert.Location,
		Description:  insert.Description,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	s.listings[listing.ID] = listing
	return &listing, nil
}

func (s *memoryStore) UpdateListing(_ context.Context, id string, update domain.ListingUpdate) (*domain.Listing, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, constants.ErrNotFound
	}

	if update.CropID != nil {
		listing.CropID = update.CropID
	}
	if update.Quantity != nil {
		listing.Quantity = *update.Quantity
	}
	if update.PricePerUnit != nil {
		listing.PricePerUnit = *update.PricePerUnit
	}
	if update.Location != nil {
		listing.Location = *update.Location
	}
	if update.Description != nil {
		listing.Description = update.Description
	}
	if update.IsActive != nil {
		listing.IsActive = *update.IsActive
	}

	s.listings[id] = listing
	return &listing, nil
}

func (s *memoryStore) GetMarketPrices(_ context.Context) ([]*domain.MarketPrice, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	prices := make([]*domain.MarketPrice, 0, len(s.marketPrices))
	for _, p := range s.marketPrices {
		p := p
		prices = append(prices, &p)
	}
	sortPrices(prices)
	if len(prices) > marketPricesLimit {
		prices = prices[:marketPricesLimit]
	}
	return prices, nil
}

func (s *memoryStore) GetMarketPricesByCrop(_ context.Context, cropID string) ([]*domain.MarketPrice, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	prices := make([]*domain.MarketPrice, 0)
	for _, p := range s.marketPrices {
		if p.CropID == nil || *p.CropID != cropID {
			continue
		}
		p := p
		prices = append(prices, &p)
	}
	sortPrices(prices)
	if len(prices) > cropMarketPricesLimit {
		prices = prices[:cropMarketPricesLimit]
	}
	return prices, nil
}

func sortPrices(prices []*domain.MarketPrice) {
	sort.Slice(prices, func(i, j int) bool {
		return newestFirst(prices[i].Date, prices[j].Date, prices[i].ID, prices[j].ID)
	})
}

func (s *memoryStore) CreateMarketPrice(_ context.Context, insert domain.InsertMarketPrice) (*domain.MarketPrice, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	price := domain.MarketPrice{
		ID:          s.nextID(),
		CropID:      insert.CropID,
		Price:       insert.Price,
		PriceChange: insert.PriceChange,
		Market:      insert.Market,
		Date:        time.Now().UTC(),
	}

	s.marketPrices[price.ID] = price
	return &price, nil
}

func (s *memoryStore) GetActiveWeatherAlerts(_ context.Context, location string) ([]*domain.WeatherAlert, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	now := time.Now().UTC()
	alerts := make([]*domain.WeatherAlert, 0)
	for _, a := range s.weatherAlerts {
		if a.Location != location {
			continue
		}
		if a.ValidUntil != nil && a.ValidUntil.Before(now) {
			continue
		}
		a := a
		alerts = append(alerts, &a)
	}
	sort.Slice(alerts, func(i, j int) bool {
		return newestFirst(alerts[i].CreatedAt, alerts[j].CreatedAt, alerts[i].ID, alerts[j].ID)
	})
	return alerts, nil
}

func (s *memoryStore) CreateWeatherAlert(_ context.Context, insert domain.InsertWeatherAlert) (*domain.WeatherAlert, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	alert := domain.WeatherAlert{
		ID:            s.nextID(),
		Location:      insert.Location,
		AlertType:     insert.AlertType,
		Severity:      insert.Severity,
		Message:       insert.Message,
		MessageHindi:  insert.MessageHindi,
		MessageTelugu: insert.MessageTelugu,
		ValidUntil:    insert.ValidUntil,
		CreatedAt:     time.Now().UTC(),
	}

	s.weatherAlerts[alert.ID] = alert
	return &alert, nil
}
