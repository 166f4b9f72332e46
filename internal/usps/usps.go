// Package usps rewrites the "## USPs" section of a product brochure with
// marketing bullets derived from keyword cues found in the document.
package usps

import "strings"

// maxBullets caps the rewritten USP list.
const maxBullets = 6

// sectionHeader marks the section this package owns.
const sectionHeader = "## USPs"

// Rule pairs a keyword predicate with the bullet it unlocks. Rules are
// evaluated in order against the lowercased document text.
type Rule struct {
	Match  func(text string) bool
	Bullet string
}

// DefaultBullet is used when no rule matches.
const DefaultBullet = "Signature Volvo craftsmanship surrounds you with premium materials, intuitive technology, and reassuring safety leadership."

// DefaultRules returns the cue-to-bullet pairs for the premium trim
// brochures. Callers may pass their own ordered rule set to Build instead.
func DefaultRules() []Rule {
	return []Rule{
		{
			Match:  func(t string) bool { return strings.Contains(t, "gear") && strings.Contains(t, "crystal") },
			Bullet: "The hand-cut Orrefors® crystal gear selector adds a jewel-like centerpiece that reminds you this is true Scandinavian luxury.",
		},
		{
			Match:  func(t string) bool { return strings.Contains(t, "led matrix") || strings.Contains(t, "thor") },
			Bullet: "Iconic Thor's Hammer LED Matrix headlamps carve out your presence with signature light signatures day or night.",
		},
		{
			Match:  func(t string) bool { return strings.Contains(t, "bowers") },
			Bullet: "Concert-hall acoustics come standard thanks to the 1410W Bowers & Wilkins audio suite with 19 precisely tuned speakers.",
		},
		{
			Match:  func(t string) bool { return strings.Contains(t, "four-c") && strings.Contains(t, "air suspension") },
			Bullet: "Four-C adaptive chassis with 4-corner air suspension glides over every surface, delivering limousine-like calm.",
		},
		{
			Match:  func(t string) bool { return strings.Contains(t, "panoramic") && strings.Contains(t, "roof") },
			Bullet: "A sweeping panoramic roof floods the airy cabin with Scandinavian light for every row.",
		},
		{
			Match:  func(t string) bool { return strings.Contains(t, "massage") && strings.Contains(t, "seat") },
			Bullet: "Ventilated Nappa seats with built-in massage create a spa-like sanctuary on every journey.",
		},
	}
}

// Build evaluates the rules against the document and returns the bullet list:
// unique, period-terminated, at most maxBullets, with a default bullet when
// nothing matched.
func Build(content string, rules []Rule) []string {
	text := strings.ToLower(content)

	var bullets []string
	for _, r := range rules {
		if r.Match(text) {
			bullets = append(bullets, r.Bullet)
		}
	}
	if len(bullets) == 0 {
		bullets = append(bullets, DefaultBullet)
	}

	cleaned := make([]string, 0, len(bullets))
	seen := make(map[string]bool, len(bullets))
	for _, b := range bullets {
		if !strings.HasSuffix(b, ".") {
			b += "."
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		cleaned = append(cleaned, b)
	}
	if len(cleaned) > maxBullets {
		cleaned = cleaned[:maxBullets]
	}
	return cleaned
}

// HasSection reports whether the document contains a USP section to rewrite.
func HasSection(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, sectionHeader) {
			return true
		}
	}
	return false
}

// Replace rewrites the body of the USP section with the given bullets,
// dropping the old bullet list. Returns the content unchanged and false when
// the document has no USP section.
func Replace(content string, bullets []string) (string, bool) {
	if !HasSection(content) {
		return content, false
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines)+len(bullets)+3)

	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.HasPrefix(line, sectionHeader) {
			out = append(out, sectionHeader, "")
			for _, b := range bullets {
				out = append(out, "- "+b)
			}
			out = append(out, "")

			// Skip the old bullet list and its surrounding blanks.
			i++
			for i < len(lines) && (strings.TrimSpace(lines[i]) == "" || strings.HasPrefix(lines[i], "-")) {
				i++
			}
			continue
		}
		out = append(out, line)
		i++
	}

	return strings.TrimRight(strings.Join(out, "\n"), " \t\n") + "\n", true
}
