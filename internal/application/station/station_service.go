package station

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StationService manages the physical station layout: dispensers, nozzles
// and tanks, plus nozzle lock state and tank volume history.
type StationService struct {
	dispenserRepo   station.DispenserRepository
	nozzleRepo      station.NozzleRepository
	tankRepo        station.TankRepository
	tankReadingRepo station.TankReadingRepository
	logger          *zap.Logger
}

// NewStationService creates a new StationService
func NewStationService(
	dispenserRepo station.DispenserRepository,
	nozzleRepo station.NozzleRepository,
	tankRepo station.TankRepository,
	tankReadingRepo station.TankReadingRepository,
	logger *zap.Logger,
) *StationService {
	return &StationService{
		dispenserRepo:   dispenserRepo,
		nozzleRepo:      nozzleRepo,
		tankRepo:        tankRepo,
		tankReadingRepo: tankReadingRepo,
		logger:          logger,
	}
}

// CreateDispenser registers a new dispenser
func (s *StationService) CreateDispenser(ctx context.Context, req CreateDispenserRequest) (*DispenserResponse, error) {
	dispenser, err := station.NewDispenser(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.dispenserRepo.Save(ctx, dispenser); err != nil {
		return nil, err
	}
	resp := ToDispenserResponse(dispenser)
	return &resp, nil
}

// CreateTank registers a new tank
func (s *StationService) CreateTank(ctx context.Context, req CreateTankRequest) (*TankResponse, error) {
	tank, err := station.NewTank(req.Name, req.ProductID, req.Capacity)
	if err != nil {
		return nil, err
	}
	if err := s.tankRepo.Save(ctx, tank); err != nil {
		return nil, err
	}
	resp := ToTankResponse(tank)
	return &resp, nil
}

// CreateNozzle attaches a nozzle to a dispenser. The dispenser must exist;
// an assigned tank, when given, must exist as well.
func (s *StationService) CreateNozzle(ctx context.Context, req CreateNozzleRequest) (*NozzleResponse, error) {
	if _, err := s.dispenserRepo.FindByID(ctx, req.DispenserID); err != nil {
		return nil, err
	}
	if req.TankID != nil {
		if _, err := s.tankRepo.FindByID(ctx, *req.TankID); err != nil {
			return nil, err
		}
	}

	nozzle, err := station.NewNozzle(req.DispenserID, req.ProductID, req.TankID)
	if err != nil {
		return nil, err
	}
	if err := s.nozzleRepo.Save(ctx, nozzle); err != nil {
		return nil, err
	}
	resp := ToNozzleResponse(nozzle)
	return &resp, nil
}

// LockNozzle takes a nozzle out of service
func (s *StationService) LockNozzle(ctx context.Context, nozzleID uuid.UUID) (*NozzleResponse, error) {
	nozzle, err := s.nozzleRepo.FindByID(ctx, nozzleID)
	if err != nil {
		return nil, err
	}
	if err := nozzle.Lock(); err != nil {
		return nil, err
	}
	if err := s.nozzleRepo.SaveWithLock(ctx, nozzle); err != nil {
		return nil, err
	}

	s.logger.Info("nozzle locked", zap.String("nozzle_id", nozzleID.String()))
	resp := ToNozzleResponse(nozzle)
	return &resp, nil
}

// UnlockNozzle returns a locked nozzle to service
func (s *StationService) UnlockNozzle(ctx context.Context, nozzleID uuid.UUID) (*NozzleResponse, error) {
	nozzle, err := s.nozzleRepo.FindByID(ctx, nozzleID)
	if err != nil {
		return nil, err
	}
	if err := nozzle.Unlock(); err != nil {
		return nil, err
	}
	if err := s.nozzleRepo.SaveWithLock(ctx, nozzle); err != nil {
		return nil, err
	}

	s.logger.Info("nozzle unlocked", zap.String("nozzle_id", nozzleID.String()))
	resp := ToNozzleResponse(nozzle)
	return &resp, nil
}

// ListTanks returns all tanks
func (s *StationService) ListTanks(ctx context.Context, filter shared.Filter) ([]TankResponse, error) {
	tanks, err := s.tankRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]TankResponse, 0, len(tanks))
	for i := range tanks {
		responses = append(responses, ToTankResponse(&tanks[i]))
	}
	return responses, nil
}

// ListDispenserNozzles returns the nozzles attached to a dispenser
func (s *StationService) ListDispenserNozzles(ctx context.Context, dispenserID uuid.UUID) ([]NozzleResponse, error) {
	if _, err := s.dispenserRepo.FindByID(ctx, dispenserID); err != nil {
		return nil, err
	}
	nozzles, err := s.nozzleRepo.FindByDispenser(ctx, dispenserID)
	if err != nil {
		return nil, err
	}
	responses := make([]NozzleResponse, 0, len(nozzles))
	for i := range nozzles {
		responses = append(responses, ToNozzleResponse(&nozzles[i]))
	}
	return responses, nil
}

// ListTankReadings returns the volume history of one tank
func (s *StationService) ListTankReadings(ctx context.Context, tankID uuid.UUID, filter shared.Filter) ([]TankReadingResponse, error) {
	if _, err := s.tankRepo.FindByID(ctx, tankID); err != nil {
		return nil, err
	}
	readings, err := s.tankReadingRepo.FindByTank(ctx, tankID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]TankReadingResponse, 0, len(readings))
	for _, reading := range readings {
		responses = append(responses, ToTankReadingResponse(reading))
	}
	return responses, nil
}
