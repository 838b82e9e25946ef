// Package ppssp generates random benchmark instances for the multi-period
// project portfolio selection and scheduling problem: correlated project
// cost/duration profiles, prerequisite, mutual-exclusion and synergy
// constraints, and a linear multi-period budget schedule.
package ppssp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/floats"
)

// Project is a candidate project of the portfolio. Relation sets hold
// 1-based project ids and are filled in after the whole set of projects has
// been generated; a project never references itself.
type Project struct {
	ID       int
	Name     string
	Duration int
	// Cost and Value hold one integral amount per period of the project's
	// duration and sum exactly to TotalCost and TotalValue.
	Cost  []float64
	Value []float64

	TotalCost  float64
	TotalValue float64

	PrerequisiteList mapset.Set[int]
	SuccessorList    mapset.Set[int]
	ExclusionList    mapset.Set[int]
}

func newProject(id, duration int, cost, value []float64, totalCost, totalValue float64) *Project {
	return &Project{
		ID:               id,
		Name:             fmt.Sprintf("Project %d", id),
		Duration:         duration,
		Cost:             cost,
		Value:            value,
		TotalCost:        totalCost,
		TotalValue:       totalValue,
		PrerequisiteList: mapset.NewSet[int](),
		SuccessorList:    mapset.NewSet[int](),
		ExclusionList:    mapset.NewSet[int](),
	}
}

// Synergy is a bonus value realized only if every member project is selected.
type Synergy struct {
	ProjectIDs []int
	Value      int
}

// ProjectProblemInstance is the finished, read-only product of generation.
type ProjectProblemInstance struct {
	Projects  []*Project
	Synergies []*Synergy

	Budget           []float64
	InitiationBudget []float64
	OngoingBudget    []float64

	PlanningWindow   int
	BudgetWindow     int
	NumProjects      int
	MaxProjectLength int
	DiscountRate     float64
	Identifier       string

	Parameters *InstanceParameters
}

func sortedIDs(s mapset.Set[int]) []int {
	ids := s.ToSlice()
	sort.Ints(ids)
	return ids
}

func (p *Project) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "\tID: %d", p.ID)
	fmt.Fprintf(s, "\tName: %s", p.Name)
	fmt.Fprintf(s, "\tCost: %v", p.Cost)
	fmt.Fprintf(s, "\tValue: %v", p.Value)
	fmt.Fprintf(s, "\tDur: %d", p.Duration)
	fmt.Fprintf(s, "\tPred.: %v", sortedIDs(p.PrerequisiteList))
	fmt.Fprintf(s, "\tSucc.: %v", sortedIDs(p.SuccessorList))
	fmt.Fprintf(s, "\tExcl.: %v", sortedIDs(p.ExclusionList))
	return s.String()
}

func (syn *Synergy) String() string {
	return fmt.Sprintf("\tProjects: %v\tValue: %d", syn.ProjectIDs, syn.Value)
}

func (inst *ProjectProblemInstance) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "Instance: %s\n", inst.Identifier)
	fmt.Fprintf(s, "N. projects: %d\n", inst.NumProjects)
	fmt.Fprintf(s, "Planning window: %d, budget window: %d\n", inst.PlanningWindow, inst.BudgetWindow)
	fmt.Fprintf(s, "Budget: %v\n", inst.Budget)
	s.WriteString("Projects:\n")
	for _, p := range inst.Projects {
		s.WriteString(p.String())
		s.WriteRune('\n')
	}
	s.WriteString("Synergies:\n")
	for _, syn := range inst.Synergies {
		s.WriteString(syn.String())
		s.WriteRune('\n')
	}
	return s.String()
}

type projectJSON struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Duration         int       `json:"duration"`
	Prerequisites    []int     `json:"prerequisites"`
	Successors       []int     `json:"successors"`
	MutualExclusions []int     `json:"mutual_exclusions"`
	Cost             []float64 `json:"cost"`
	Value            []float64 `json:"value"`
}

func (p *Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(projectJSON{
		ID:               p.ID,
		Name:             p.Name,
		Duration:         p.Duration,
		Prerequisites:    sortedIDs(p.PrerequisiteList),
		Successors:       sortedIDs(p.SuccessorList),
		MutualExclusions: sortedIDs(p.ExclusionList),
		Cost:             p.Cost,
		Value:            p.Value,
	})
}

type synergyJSON struct {
	Value      int   `json:"value"`
	ProjectIDs []int `json:"project_ids"`
}

func (syn *Synergy) MarshalJSON() ([]byte, error) {
	return json.Marshal(synergyJSON{Value: syn.Value, ProjectIDs: syn.ProjectIDs})
}

type instanceJSON struct {
	ProblemName       string     `json:"problem_name"`
	Periods           int        `json:"periods"`
	Budget            []float64  `json:"budget"`
	InitiationBudget  []float64  `json:"initiation_budget"`
	MaintenanceBudget []float64  `json:"maintenance_budget"`
	Synergies         []*Synergy `json:"synergies"`
	Projects          []*Project `json:"projects"`
}

func (inst *ProjectProblemInstance) MarshalJSON() ([]byte, error) {
	synergies := inst.Synergies
	if synergies == nil {
		synergies = []*Synergy{}
	}
	return json.Marshal(instanceJSON{
		ProblemName:       inst.Identifier,
		Periods:           inst.PlanningWindow,
		Budget:            inst.Budget,
		InitiationBudget:  inst.InitiationBudget,
		MaintenanceBudget: inst.OngoingBudget,
		Synergies:         synergies,
		Projects:          inst.Projects,
	})
}

// ToJSON renders the instance as indented JSON, the interchange format
// consumed by downstream solvers.
func (inst *ProjectProblemInstance) ToJSON() ([]byte, error) {
	return json.MarshalIndent(inst, "", "  ")
}

// TotalBudget reports the summed budget over the whole budget window.
func (inst *ProjectProblemInstance) TotalBudget() float64 {
	return floats.Sum(inst.Budget)
}
