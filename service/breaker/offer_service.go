package breaker

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	breakerEntity "multirex.GO/model/entity/breaker"
	breakerRepo "multirex.GO/model/repository/breaker"
)

var (
	ErrEmptyBreakerName = errors.New("breaker name is empty")
	ErrEmptyEngineCode  = errors.New("engine code is empty")
	ErrEmptyOfferText   = errors.New("offer text is empty")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNegativePrice    = errors.New("asking price must not be negative")
)

// OfferService validates and records breaker offers. It resolves the
// breaker identity by name, creating it on first use.
type OfferService struct {
	repo *breakerRepo.BreakerRepository
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{repo: breakerRepo.NewBreakerRepository(db)}
}

// ClickOfferInput carries a structured offer submission.
type ClickOfferInput struct {
	BreakerName     string   `json:"casse"`
	EngineCode      string   `json:"code_moteur"`
	Brand           *string  `json:"marque"`
	Energy          *string  `json:"energie"`
	TypeName        *string  `json:"type_nom"`
	TypeModel       *string  `json:"type_modele"`
	TypeYear        *string  `json:"type_annee"`
	AskingPrice     *float64 `json:"prix_demande"`
	Quantity        int      `json:"qty"`
	Note            *string  `json:"note"`
	PlateNo         *string  `json:"immatriculation"`
	VIN             *string  `json:"vin"`
	EnginePhotoPath *string  `json:"photo_moteur_path"`
	PlatePhotoPath  *string  `json:"photo_plaque_path"`
	AudioPath       *string  `json:"audio_path"`
}

// FreeOfferInput carries a free-text offer submission.
type FreeOfferInput struct {
	BreakerName     string   `json:"casse"`
	Text            string   `json:"texte"`
	AskingPrice     *float64 `json:"prix_demande"`
	Note            *string  `json:"note"`
	PlateNo         *string  `json:"immatriculation"`
	VIN             *string  `json:"vin"`
	EnginePhotoPath *string  `json:"photo_moteur_path"`
	PlatePhotoPath  *string  `json:"photo_plaque_path"`
	AudioPath       *string  `json:"audio_path"`
}

func validatePrice(price *float64) error {
	if price != nil && *price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// SubmitClickOffer validates the input, resolves the breaker and stores
// the offer. The engine code is trimmed and uppercased before storage.
func (s *OfferService) SubmitClickOffer(in ClickOfferInput) (*breakerEntity.ClickOffer, error) {
	name := strings.TrimSpace(in.BreakerName)
	if name == "" {
		return nil, ErrEmptyBreakerName
	}
	code := strings.ToUpper(strings.TrimSpace(in.EngineCode))
	if code == "" {
		return nil, ErrEmptyEngineCode
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := validatePrice(in.AskingPrice); err != nil {
		return nil, err
	}

	b, err := s.repo.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	offer := &breakerEntity.ClickOffer{
		BreakerID:       b.ID,
		EngineCode:      code,
		Brand:           in.Brand,
		Energy:          in.Energy,
		TypeName:        in.TypeName,
		TypeModel:       in.TypeModel,
		TypeYear:        in.TypeYear,
		AskingPrice:     in.AskingPrice,
		Quantity:        in.Quantity,
		Note:            in.Note,
		PlateNo:         in.PlateNo,
		VIN:             in.VIN,
		EnginePhotoPath: in.EnginePhotoPath,
		PlatePhotoPath:  in.PlatePhotoPath,
		AudioPath:       in.AudioPath,
	}
	if err := s.repo.InsertClickOffer(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// SubmitFreeOffer validates the input, resolves the breaker and stores
// the free-text offer.
func (s *OfferService) SubmitFreeOffer(in FreeOfferInput) (*breakerEntity.FreeOffer, error) {
	name := strings.TrimSpace(in.BreakerName)
	if name == "" {
		return nil, ErrEmptyBreakerName
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyOfferText
	}
	if err := validatePrice(in.AskingPrice); err != nil {
		return nil, err
	}

	b, err := s.repo.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	offer := &breakerEntity.FreeOffer{
		BreakerID:       b.ID,
		Text:            text,
		AskingPrice:     in.AskingPrice,
		Note:            in.Note,
		PlateNo:         in.PlateNo,
		VIN:             in.VIN,
		EnginePhotoPath: in.EnginePhotoPath,
		PlatePhotoPath:  in.PlatePhotoPath,
		AudioPath:       in.AudioPath,
	}
	if err := s.repo.InsertFreeOffer(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// RecentClickOffers returns the latest structured offers with breaker names.
func (s *OfferService) RecentClickOffers(limit int) ([]breakerRepo.ClickOfferFeedItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.RecentClickOffers(limit)
}

// RecentFreeOffers returns the latest free-text offers with breaker names.
func (s *OfferService) RecentFreeOffers(limit int) ([]breakerRepo.FreeOfferFeedItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.RecentFreeOffers(limit)
}

// StatsToday counts a breaker's submissions since local midnight.
func (s *OfferService) StatsToday(breakerName string) (*breakerRepo.DayStats, error) {
	name := strings.TrimSpace(breakerName)
	if name == "" {
		return nil, ErrEmptyBreakerName
	}
	b, err := s.repo.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	return s.repo.StatsToday(b.ID, time.Now())
}
