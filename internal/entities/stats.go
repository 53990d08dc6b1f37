package entities

// Stat is one named battle statistic
type Stat struct {
	Name  string
	Value int
}

// StatsView is an insertion-ordered mapping of stat name to base value.
// A name that appears twice keeps its first position and its last value.
type StatsView struct {
	entries []Stat
	index   map[string]int
}

func newStatsView(capacity int) *StatsView {
	return &StatsView{
		entries: make([]Stat, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

func (v *StatsView) set(name string, value int) {
	if i, ok := v.index[name]; ok {
		v.entries[i].Value = value
		return
	}
	v.index[name] = len(v.entries)
	v.entries = append(v.entries, Stat{Name: name, Value: value})
}

// Len returns the number of distinct stats
func (v *StatsView) Len() int {
	return len(v.entries)
}

// Get returns the value for name
func (v *StatsView) Get(name string) (int, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.entries[i].Value, true
}

// Names returns the stat names in order
func (v *StatsView) Names() []string {
	names := make([]string, len(v.entries))
	for i, e := range v.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the ordered stats
func (v *StatsView) Entries() []Stat {
	out := make([]Stat, len(v.entries))
	copy(out, v.entries)
	return out
}

// Max returns the largest value, 0 for an empty view
func (v *StatsView) Max() int {
	highest := 0
	for _, e := range v.entries {
		if e.Value > highest {
			highest = e.Value
		}
	}
	return highest
}

// Total returns the sum of all values
func (v *StatsView) Total() int {
	total := 0
	for _, e := range v.entries {
		total += e.Value
	}
	return total
}
