package model

// Parameter identifies one tracked soil telemetry channel.
type Parameter string

const (
	ParameterMoisture    Parameter = "moisture"
	ParameterTemperature Parameter = "temperature"
	ParameterEC          Parameter = "ec"
	ParameterPH          Parameter = "ph"
	ParameterNitrogen    Parameter = "nitrogen"
	ParameterPhosphorus  Parameter = "phosphorus"
	ParameterPotassium   Parameter = "potassium"
)

func (p Parameter) String() string {
	return string(p)
}

// AllParameters returns the canonical evaluation order used by the
// advisory engine and the history aggregator.
func AllParameters() []Parameter {
	return []Parameter{
		ParameterMoisture,
		ParameterTemperature,
		ParameterEC,
		ParameterPH,
		ParameterNitrogen,
		ParameterPhosphorus,
		ParameterPotassium,
	}
}

// Label returns the display name used in advisory text and alt-crop rules.
func (p Parameter) Label() string {
	switch p {
	case ParameterMoisture:
		return "Soil Moisture"
	case ParameterTemperature:
		return "Temperature"
	case ParameterEC:
		return "Electrical Conductivity"
	case ParameterPH:
		return "pH"
	case ParameterNitrogen:
		return "Nitrogen"
	case ParameterPhosphorus:
		return "Phosphorus"
	case ParameterPotassium:
		return "Potassium"
	}
	return string(p)
}

// Valid reports whether p is one of the tracked parameters.
func (p Parameter) Valid() bool {
	switch p {
	case ParameterMoisture, ParameterTemperature, ParameterEC, ParameterPH,
		ParameterNitrogen, ParameterPhosphorus, ParameterPotassium:
		return true
	}
	return false
}
