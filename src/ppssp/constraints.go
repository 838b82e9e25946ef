package ppssp

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// maxSynergyAttempts caps the rejection loop for a single synergy group. A
// dense enough exclusion structure can make every candidate group
// inconsistent, so the loop must fail rather than spin.
const maxSynergyAttempts = 10000

// constraintGenerator owns the project slice while relation lists are being
// populated. Prerequisite and exclusion passes draw disjoint groups from a
// shrinking pool, so a project joins at most one group per pass; the synergy
// pass draws every group from the full index range and may reuse projects.
type constraintGenerator struct {
	projects []*Project
	rnd      *rand.Rand
}

func newConstraintGenerator(projects []*Project, rnd *rand.Rand) *constraintGenerator {
	return &constraintGenerator{projects: projects, rnd: rnd}
}

// run executes the three passes. Exclusions must come first: the synergy
// rejection test reads the exclusion lists being built here.
func (g *constraintGenerator) run(prerequisites, exclusions, synergies []GroupTuple) ([]*Synergy, error) {
	if err := g.generateExclusions(exclusions); err != nil {
		return nil, err
	}
	if err := g.generatePrerequisites(prerequisites); err != nil {
		return nil, err
	}
	return g.generateSynergies(synergies)
}

func (g *constraintGenerator) groupCount(t GroupTuple) int {
	return int(t.Proportion * float64(len(g.projects)) / float64(t.Size))
}

// drawGroups samples count disjoint groups of size indices without
// replacement from pool and returns the groups together with the remaining
// pool in ascending order.
func (g *constraintGenerator) drawGroups(pool []int, size, count int) ([][]int, []int, error) {
	need := size * count
	if need > len(pool) {
		return nil, nil, fmt.Errorf("%w: need %d from a pool of %d", ErrPoolExhausted, need, len(pool))
	}

	perm := g.rnd.Perm(len(pool))
	drawn := make(map[int]bool, need)
	groups := make([][]int, count)
	for i := range count {
		group := make([]int, size)
		for j := range size {
			index := pool[perm[i*size+j]]
			group[j] = index
			drawn[index] = true
		}
		groups[i] = group
	}

	rest := make([]int, 0, len(pool)-need)
	for _, index := range pool {
		if !drawn[index] {
			rest = append(rest, index)
		}
	}
	return groups, rest, nil
}

// generateExclusions turns each drawn group into a full pairwise clique:
// every member lists every other member as mutually exclusive.
func (g *constraintGenerator) generateExclusions(tuples []GroupTuple) error {
	pool := indexPool(len(g.projects))
	for _, t := range tuples {
		groups, rest, err := g.drawGroups(pool, t.Size, g.groupCount(t))
		if err != nil {
			return fmt.Errorf("exclusion pass: %w", err)
		}
		pool = rest

		for _, group := range groups {
			for _, a := range group {
				for _, b := range group {
					if a == b {
						continue
					}
					g.projects[a].ExclusionList.Add(g.projects[b].ID)
				}
			}
		}
	}
	return nil
}

// generatePrerequisites makes the smallest id of each drawn group the sole
// prerequisite of the remaining members. Project id stands in for dependency
// direction here; it is a sampling convention, not a causal model.
func (g *constraintGenerator) generatePrerequisites(tuples []GroupTuple) error {
	pool := indexPool(len(g.projects))
	for _, t := range tuples {
		groups, rest, err := g.drawGroups(pool, t.Size, g.groupCount(t))
		if err != nil {
			return fmt.Errorf("prerequisite pass: %w", err)
		}
		pool = rest

		for _, group := range groups {
			sort.Ints(group)
			prereq := g.projects[group[0]]
			for _, index := range group[1:] {
				successor := g.projects[index]
				prereq.SuccessorList.Add(successor.ID)
				successor.PrerequisiteList.Add(prereq.ID)
			}
		}
	}
	return nil
}

// generateSynergies draws groups from the full index range, redrawing any
// group containing a mutually exclusive pair. An accepted group's bonus is a
// uniform integer in [1, total member value).
func (g *constraintGenerator) generateSynergies(tuples []GroupTuple) ([]*Synergy, error) {
	n := len(g.projects)
	var synergies []*Synergy

	for _, t := range tuples {
		if t.Size > n {
			return nil, fmt.Errorf("synergy pass: %w: need %d from a pool of %d", ErrPoolExhausted, t.Size, n)
		}
		for range g.groupCount(t) {
			group, err := g.drawConsistentGroup(n, t.Size)
			if err != nil {
				return nil, err
			}

			totalGroupValue := 0.0
			ids := make([]int, t.Size)
			for i, index := range group {
				totalGroupValue += floats.Sum(g.projects[index].Value)
				ids[i] = g.projects[index].ID
			}
			upper := int(totalGroupValue)
			if upper <= 1 {
				return nil, fmt.Errorf("%w: group %v has total value %d", ErrSynergyValueRange, ids, upper)
			}

			synergies = append(synergies, &Synergy{
				ProjectIDs: ids,
				Value:      1 + g.rnd.IntN(upper-1),
			})
		}
	}
	return synergies, nil
}

// drawConsistentGroup rejection-samples a group of size distinct indices
// whose members are pairwise non-exclusive.
func (g *constraintGenerator) drawConsistentGroup(n, size int) ([]int, error) {
	for range maxSynergyAttempts {
		group := g.rnd.Perm(n)[:size]
		if g.isExclusionConsistent(group) {
			return group, nil
		}
	}
	return nil, fmt.Errorf("%w: group size %d, %d attempts", ErrSynergyAttempts, size, maxSynergyAttempts)
}

func (g *constraintGenerator) isExclusionConsistent(group []int) bool {
	for i, a := range group {
		for _, b := range group[i+1:] {
			// Exclusions are symmetric, so one direction suffices.
			if g.projects[a].ExclusionList.Contains(g.projects[b].ID) {
				return false
			}
		}
	}
	return true
}

func indexPool(n int) []int {
	pool := make([]int, n)
	for i := range n {
		pool[i] = i
	}
	return pool
}
