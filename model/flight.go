package model

// SearchResult is the root of the bundled flight-search response.
type SearchResult struct {
	Result Result `json:"result"`
}

type Result struct {
	Flights    []FlightEntry `json:"flights"`
	BestPrices BestPrices    `json:"bestPrices"`
}

// FlightEntry wraps one bookable offer together with its booking token.
type FlightEntry struct {
	HasExtendedFare bool   `json:"hasExtendedFare"`
	Flight          Flight `json:"flight"`
	FlightToken     string `json:"flightToken"`
}

type Flight struct {
	Carrier          Carrier          `json:"carrier"`
	Price            Price            `json:"price"`
	ServicesStatuses ServicesStatuses `json:"servicesStatuses"`
	Legs             []Leg            `json:"legs"`
	Exchange         Exchange         `json:"exchange"`
	International    bool             `json:"international"`
	Seats            []Seat           `json:"seats"`
	Refund           Refund           `json:"refund"`
}

type Carrier struct {
	UID         string `json:"uid"`
	Caption     string `json:"caption"`
	AirlineCode string `json:"airlineCode"`
}

type Price struct {
	Total            Money            `json:"total"`
	TotalFeeAndTaxes Money            `json:"totalFeeAndTaxes"`
	PassengerPrices  []PassengerPrice `json:"passengerPrices"`
}

// Money carries a decimal amount as a string, exactly as the upstream
// payload does. Parsing happens at the point of use.
type Money struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	CurrencyCode string `json:"currencyCode"`
}

type PassengerPrice struct {
	Total                Money `json:"total"`
	PassengerType        Ref   `json:"passengerType"`
	SinglePassengerTotal Money `json:"singlePassengerTotal"`
	PassengerCount       int   `json:"passengerCount"`
	Tariff               Money `json:"tariff"`
	FeeAndTaxes          Money `json:"feeAndTaxes"`
}

// Ref is the upstream uid/caption pair used for airports, cities,
// service classes and similar lookups.
type Ref struct {
	UID     string `json:"uid"`
	Caption string `json:"caption"`
}

type ServicesStatuses struct {
	Baggage  Ref `json:"baggage"`
	Exchange Ref `json:"exchange"`
	Refund   Ref `json:"refund"`
}

type Leg struct {
	Duration int       `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	ClassOfServiceCode string   `json:"classOfServiceCode"`
	ClassOfService     Ref      `json:"classOfService"`
	DepartureAirport   Ref      `json:"departureAirport"`
	DepartureCity      *Ref     `json:"departureCity,omitempty"`
	Aircraft           Ref      `json:"aircraft"`
	TravelDuration     int      `json:"travelDuration"`
	ArrivalCity        *Ref     `json:"arrivalCity,omitempty"`
	ArrivalDate        string   `json:"arrivalDate"`
	FlightNumber       string   `json:"flightNumber"`
	DepartureDate      string   `json:"departureDate"`
	Stops              int      `json:"stops"`
	Airline            Carrier  `json:"airline"`
	Starting           bool     `json:"starting"`
	ArrivalAirport     Ref      `json:"arrivalAirport"`
	OperatingAirline   *Carrier `json:"operatingAirline,omitempty"`
}

type Exchange struct {
	Adult ExchangeConditions `json:"ADULT"`
}

type ExchangeConditions struct {
	ExchangeableBeforeDeparture bool  `json:"exchangeableBeforeDeparture"`
	ExchangeAfterDeparture      Money `json:"exchangeAfterDeparture"`
	ExchangeBeforeDeparture     Money `json:"exchangeBeforeDeparture"`
	ExchangeableAfterDeparture  bool  `json:"exchangeableAfterDeparture"`
}

type Refund struct {
	Adult RefundConditions `json:"ADULT"`
}

type RefundConditions struct {
	RefundableBeforeDeparture bool   `json:"refundableBeforeDeparture"`
	RefundableAfterDeparture  bool   `json:"refundableAfterDeparture"`
	RefundBeforeDeparture     *Money `json:"refundBeforeDeparture,omitempty"`
	RefundAfterDeparture      *Money `json:"refundAfterDeparture,omitempty"`
}

type Seat struct {
	Count int `json:"count"`
	Type  Ref `json:"type"`
}

// BestPrices indexes the cheapest carrier/price pairs per connection
// category. Only the DIRECT list is consulted when classifying offers.
type BestPrices struct {
	OneConnection BestPriceCategory `json:"ONE_CONNECTION"`
	Direct        BestPriceCategory `json:"DIRECT"`
}

type BestPriceCategory struct {
	BestFlights []BestFlight `json:"bestFlights"`
}

type BestFlight struct {
	Carrier Carrier `json:"carrier"`
	Price   Money   `json:"price"`
}

// Leg returns the i-th leg of the flight. One-way itineraries have no
// second leg; callers must handle the missing case.
func (f Flight) Leg(i int) (Leg, bool) {
	if i < 0 || i >= len(f.Legs) {
		return Leg{}, false
	}
	return f.Legs[i], true
}

// Segment returns the i-th segment of the leg, if present.
func (l Leg) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(l.Segments) {
		return Segment{}, false
	}
	return l.Segments[i], true
}

// DirectCarriers returns the set of carrier uids that appear in the
// DIRECT best-flights list.
func (b BestPrices) DirectCarriers() map[string]bool {
	set := make(map[string]bool, len(b.Direct.BestFlights))
	for _, best := range b.Direct.BestFlights {
		set[best.Carrier.UID] = true
	}
	return set
}
