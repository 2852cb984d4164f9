package bemlint

import (
	"sort"
	"strings"

	"github.com/yacobolo/bem"
)

// Decompose splits a class name into block, element, and modifier using
// cfg's separators and checks each part with bem.Validate.
//
// The first modifier separator ends the base class; the first element
// separator inside the base ends the block:
//
//	card                -> {card, "", ""}
//	card__title         -> {card, title, ""}
//	card__title--big    -> {card, title, big}
//	card--dark          -> {card, "", dark}
func Decompose(class string, cfg bem.Config) (Parts, []Problem) {
	var parts Parts
	var problems []Problem

	head := class
	hasModifier := false
	if sep := cfg.ModifierSeparator; sep != "" {
		if idx := strings.Index(class, sep); idx >= 0 {
			head = class[:idx]
			parts.Modifier = class[idx+len(sep):]
			hasModifier = true
		}
	}

	parts.Block = head
	hasElement := false
	if sep := cfg.ElementSeparator; sep != "" {
		if idx := strings.Index(head, sep); idx >= 0 {
			parts.Block = head[:idx]
			parts.Element = head[idx+len(sep):]
			hasElement = true

			if strings.Contains(parts.Element, sep) {
				problems = append(problems, Problem{
					Kind: ProblemNestedElement,
					Part: bem.KindElement,
					Text: "element of an element; flatten to " + parts.Block + sep + lastSegment(parts.Element, sep),
				})
			}
		}
	}

	if parts.Block == "" {
		problems = append(problems, Problem{Kind: ProblemEmptyPart, Part: bem.KindBlock, Text: "block name is empty"})
	}
	if hasElement && parts.Element == "" {
		problems = append(problems, Problem{Kind: ProblemEmptyPart, Part: bem.KindElement, Text: "element name is empty"})
	}
	if hasModifier && parts.Modifier == "" {
		problems = append(problems, Problem{Kind: ProblemEmptyPart, Part: bem.KindModifier, Text: "modifier name is empty"})
	}

	for _, p := range []struct {
		value string
		kind  bem.Kind
	}{
		{parts.Block, bem.KindBlock},
		{parts.Element, bem.KindElement},
		{parts.Modifier, bem.KindModifier},
	} {
		if err := bem.Validate(p.value, p.kind); err != nil {
			problems = append(problems, Problem{Kind: ProblemInvalidName, Part: p.kind, Text: err.Error()})
		}
	}

	return parts, problems
}

func lastSegment(s, sep string) string {
	if idx := strings.LastIndex(s, sep); idx >= 0 {
		return s[idx+len(sep):]
	}
	return s
}

// BuildInventory groups stylesheet classes by block. Internal classes
// (leading underscore) and classes with naming errors are recorded in
// Classes but not added to any block.
func BuildInventory(classes []*CSSClass, cfg bem.Config) *Inventory {
	inv := &Inventory{
		Blocks:  make(map[string]*BlockInfo),
		Classes: make(map[string]bool),
	}

	for _, class := range classes {
		inv.Classes[class.Name] = true
		if class.IsInternal {
			continue
		}

		parts, problems := Decompose(class.Name, cfg)
		if hasErrors(problems) {
			continue
		}

		info, ok := inv.Blocks[parts.Block]
		if !ok {
			info = &BlockInfo{
				Name:      parts.Block,
				Elements:  make(map[string]bool),
				Modifiers: make(map[string]bool),
			}
			inv.Blocks[parts.Block] = info
		}

		if parts.IsBlock() {
			info.Defined = true
		}
		if parts.Element != "" {
			info.Elements[parts.Element] = true
		}
		if parts.Modifier != "" {
			key := parts.Modifier
			if parts.Element != "" {
				key = parts.Element + cfg.ModifierSeparator + parts.Modifier
			}
			info.Modifiers[key] = true
		}
		if !contains(info.Files, class.SourceFile) {
			info.Files = append(info.Files, class.SourceFile)
		}
	}

	return inv
}

// Counts returns the number of blocks, elements, and modifiers.
func (inv *Inventory) Counts() (blocks, elements, modifiers int) {
	for _, info := range inv.Blocks {
		blocks++
		elements += len(info.Elements)
		modifiers += len(info.Modifiers)
	}
	return blocks, elements, modifiers
}

// SortedBlocks returns the blocks ordered by name.
func (inv *Inventory) SortedBlocks() []*BlockInfo {
	blocks := make([]*BlockInfo, 0, len(inv.Blocks))
	for _, info := range inv.Blocks {
		blocks = append(blocks, info)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Name < blocks[j].Name
	})
	return blocks
}
