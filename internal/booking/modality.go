package booking

// Modality is one of the six travel types a booking can be made against.
type Modality string

const (
	ModalityHotel  Modality = "hotel"
	ModalityFlight Modality = "flight"
	ModalityCar    Modality = "car"
	ModalityTrain  Modality = "train"
	ModalityBus    Modality = "bus"
	ModalityMetro  Modality = "metro"
)

// ContactRule selects which passenger detail fields are mandatory.
type ContactRule int

const (
	// ContactEmailPhone requires name, email and phone.
	ContactEmailPhone ContactRule = iota
	// ContactLicensePhone requires name, driving license and phone (car rentals).
	ContactLicensePhone
)

// MaxUnitsCeiling bounds unit counts for modalities without live seat
// inventory (hotel guests, car, metro tickets).
const MaxUnitsCeiling = 10

type modalityRules struct {
	RefPrefix     string
	DurationBased bool // needs a return date; priced per night/day
	MultiplyUnits bool // total scales with the unit count
	LiveCapacity  bool // unit count bounded by the item's available seats
	Contact       ContactRule
}

var modalityTable = map[Modality]modalityRules{
	ModalityHotel:  {RefPrefix: "HTL", DurationBased: true, MultiplyUnits: true, Contact: ContactEmailPhone},
	ModalityFlight: {RefPrefix: "FLT", MultiplyUnits: true, LiveCapacity: true, Contact: ContactEmailPhone},
	ModalityCar:    {RefPrefix: "CAR", DurationBased: true, Contact: ContactLicensePhone},
	ModalityTrain:  {RefPrefix: "TRN", MultiplyUnits: true, LiveCapacity: true, Contact: ContactEmailPhone},
	ModalityBus:    {RefPrefix: "BUS", MultiplyUnits: true, LiveCapacity: true, Contact: ContactEmailPhone},
	ModalityMetro:  {RefPrefix: "MTR", MultiplyUnits: true, Contact: ContactEmailPhone},
}

// ParseModality returns the Modality for s, or false if s is not one of the
// six supported types.
func ParseModality(s string) (Modality, bool) {
	m := Modality(s)
	_, ok := modalityTable[m]
	return m, ok
}

// Modalities lists the supported modality tags.
func Modalities() []Modality {
	return []Modality{ModalityHotel, ModalityFlight, ModalityCar, ModalityTrain, ModalityBus, ModalityMetro}
}

func (m Modality) rules() modalityRules {
	return modalityTable[m]
}
