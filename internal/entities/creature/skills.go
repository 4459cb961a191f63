package creature

// Skill is a special ability with a cool down measured in battle rounds
type Skill struct {
	ID       string
	Name     string
	Damage   int
	Repair   int
	CoolDown int
}

type rotationEntry struct {
	skill     Skill
	remaining int
}

// SkillRotation cycles through a creature's skills in order, skipping the
// ones that are cooling down.
type SkillRotation struct {
	entries []*rotationEntry
	next    int
}

// NewSkillRotation creates a rotation with every skill ready
func NewSkillRotation(skills ...Skill) *SkillRotation {
	r := &SkillRotation{}
	for _, s := range skills {
		r.entries = append(r.entries, &rotationEntry{skill: s})
	}
	return r
}

// Skills returns the skills in rotation order
func (r *SkillRotation) Skills() []Skill {
	out := make([]Skill, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.skill
	}
	return out
}

// HasReadySkill reports whether any skill can be used now
func (r *SkillRotation) HasReadySkill() bool {
	for _, e := range r.entries {
		if e.remaining == 0 {
			return true
		}
	}
	return false
}

// Use returns the next ready skill and starts its cool down
func (r *SkillRotation) Use() (Skill, bool) {
	n := len(r.entries)
	for i := 0; i < n; i++ {
		idx := (r.next + i) % n
		e := r.entries[idx]
		if e.remaining == 0 {
			e.remaining = e.skill.CoolDown
			r.next = (idx + 1) % n
			return e.skill, true
		}
	}
	return Skill{}, false
}

// Refresh advances every cool down by one round
func (r *SkillRotation) Refresh() {
	for _, e := range r.entries {
		if e.remaining > 0 {
			e.remaining--
		}
	}
}

// Restart makes every skill ready and rewinds the rotation
func (r *SkillRotation) Restart() {
	for _, e := range r.entries {
		e.remaining = 0
	}
	r.next = 0
}
