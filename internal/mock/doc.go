package mock

//go:generate mockgen -source=../port/infrastructure.go -destination=mock_infrastructure.go -package=mock
//go:generate mockgen -source=../port/network.go -destination=mock_network.go -package=mock
