package param

// Filter type constants
const (
	FilterTypeLowpass = iota
	FilterTypeHighpass
	FilterTypeBandpass
)

// FilterTypeOptions lists the selectable filter responses in menu order
var FilterTypeOptions = []ChoiceOption{
	{Value: FilterTypeLowpass, Name: "Low Pass", Aliases: []string{"lowpass", "lpf", "lp"}},
	{Value: FilterTypeHighpass, Name: "High Pass", Aliases: []string{"highpass", "hpf", "hp"}},
	{Value: FilterTypeBandpass, Name: "Band Pass", Aliases: []string{"bandpass", "bpf", "bp"}},
}

// FilterTypeParameter creates the filter type selector
func FilterTypeParameter(id uint32, name string) *Builder {
	return Choice(id, name, FilterTypeOptions).Default(FilterTypeLowpass)
}
