package booking

type Service string

const (
	ServiceHaircut Service = "haircut"
	ServiceShave   Service = "shave"
	ServiceCombo   Service = "combo"
)

func (s Service) String() string {
	return string(s)
}

func (s Service) IsValid() bool {
	switch s {
	case ServiceHaircut, ServiceShave, ServiceCombo:
		return true
	default:
		return false
	}
}

func NewService(s string) (Service, error) {
	service := Service(s)
	if !service.IsValid() {
		return "", ErrUnsupportedService
	}
	return service, nil
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}
