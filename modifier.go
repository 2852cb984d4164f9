package bem

import "sort"

// Modifier is the modifier argument of Composer.Class. It is one of
// Single, Many, Flags, or FlagMap; a nil Modifier means no modifier.
type Modifier interface {
	// resolve returns the validated modifier names in output order.
	resolve() ([]string, error)
	absent() bool
}

// Single is one modifier name. An empty name counts as no modifier.
func Single(name string) Modifier {
	return single(name)
}

// Many is an ordered list of modifier names, emitted as given.
func Many(names ...string) Modifier {
	return many(names)
}

// Flag is a modifier name guarded by a condition.
type Flag struct {
	Name string
	On   bool
}

// When builds a Flag.
func When(name string, on bool) Flag {
	return Flag{Name: name, On: on}
}

// Flags emits the names of the flags that are on, in argument order.
// Flags that are off are skipped without validation.
func Flags(flags ...Flag) Modifier {
	return flagList(flags)
}

// FlagMap is Flags for a map. Entries are visited in sorted key order so
// output does not depend on map iteration.
func FlagMap(m map[string]bool) Modifier {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flags := make(flagList, 0, len(keys))
	for _, k := range keys {
		flags = append(flags, Flag{Name: k, On: m[k]})
	}
	return flags
}

type single string

func (s single) absent() bool { return s == "" }

func (s single) resolve() ([]string, error) {
	if err := Validate(string(s), KindModifier); err != nil {
		return nil, err
	}
	return []string{string(s)}, nil
}

type many []string

func (m many) absent() bool { return m == nil }

func (m many) resolve() ([]string, error) {
	for _, name := range m {
		if err := Validate(name, KindModifier); err != nil {
			return nil, err
		}
	}
	return m, nil
}

type flagList []Flag

func (f flagList) absent() bool { return f == nil }

func (f flagList) resolve() ([]string, error) {
	var names []string
	for _, flag := range f {
		if !flag.On {
			continue
		}
		if err := Validate(flag.Name, KindModifier); err != nil {
			return nil, err
		}
		names = append(names, flag.Name)
	}
	return names, nil
}
