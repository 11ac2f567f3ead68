package handlers

//go:generate mockgen -destination=mocks/mock_usecases.go -package=mocks supplyops/internal/usecase IOrderUseCase,ILinkUseCase,IComplaintUseCase,IIncidentUseCase
