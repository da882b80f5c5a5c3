package fixtures

import (
	"fmt"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/model"
)

// ProblemKind classifies a referential problem in a dataset.
type ProblemKind string

const (
	// ProblemDuplicateID means two entities of one kind share an ID.
	ProblemDuplicateID ProblemKind = "duplicate_id"
	// ProblemDanglingCategory means a product references a missing category.
	ProblemDanglingCategory ProblemKind = "dangling_category"
	// ProblemDanglingOwner means a category references a missing user.
	ProblemDanglingOwner ProblemKind = "dangling_owner"
	// ProblemInvalidSex means a user's sex is neither "m" nor "f".
	ProblemInvalidSex ProblemKind = "invalid_sex"
	// ProblemInvalidUserID means a user ID is not positive.
	ProblemInvalidUserID ProblemKind = "invalid_user_id"
)

// Problem describes one inconsistency. Problems never stop the catalog from
// loading; affected products show whatever data resolves.
type Problem struct {
	Kind   ProblemKind
	Entity string
	ID     int
	Ref    int
}

func (p Problem) String() string {
	if p.Ref != 0 {
		return fmt.Sprintf("%s: %s %d -> %d", p.Kind, p.Entity, p.ID, p.Ref)
	}
	return fmt.Sprintf("%s: %s %d", p.Kind, p.Entity, p.ID)
}

// Validate reports duplicate IDs, dangling references and malformed users.
func Validate(fx model.Fixtures) []Problem {
	var problems []Problem

	users := make(map[int]bool, len(fx.Users))
	for _, u := range fx.Users {
		if u.ID <= 0 {
			problems = append(problems, Problem{Kind: ProblemInvalidUserID, Entity: "user", ID: u.ID})
		}
		if users[u.ID] {
			problems = append(problems, Problem{Kind: ProblemDuplicateID, Entity: "user", ID: u.ID})
		}
		users[u.ID] = true
		if u.Sex != model.SexMale && u.Sex != model.SexFemale {
			problems = append(problems, Problem{Kind: ProblemInvalidSex, Entity: "user", ID: u.ID})
		}
	}

	categories := make(map[int]bool, len(fx.Categories))
	for _, c := range fx.Categories {
		if categories[c.ID] {
			problems = append(problems, Problem{Kind: ProblemDuplicateID, Entity: "category", ID: c.ID})
		}
		categories[c.ID] = true
		if !users[c.OwnerID] {
			problems = append(problems, Problem{Kind: ProblemDanglingOwner, Entity: "category", ID: c.ID, Ref: c.OwnerID})
		}
	}

	products := make(map[int]bool, len(fx.Products))
	for _, p := range fx.Products {
		if products[p.ID] {
			problems = append(problems, Problem{Kind: ProblemDuplicateID, Entity: "product", ID: p.ID})
		}
		products[p.ID] = true
		if !categories[p.CategoryID] {
			problems = append(problems, Problem{Kind: ProblemDanglingCategory, Entity: "product", ID: p.ID, Ref: p.CategoryID})
		}
	}

	return problems
}

// Report logs every problem as a warning and returns how many there were.
func Report(source string, problems []Problem) int {
	for _, p := range problems {
		common.LogWarn("fixture inconsistency", common.Fields{
			"source":  source,
			"kind":    string(p.Kind),
			"entity":  p.Entity,
			"id":      p.ID,
			"ref":     p.Ref,
			"details": p.String(),
		})
	}
	return len(problems)
}
