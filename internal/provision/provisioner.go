// Package provision drives the per-project workflow against Canvas:
// resolve the leader, create the group, add the leader, promote them when
// allowed, and record one outcome per roster entry. Projects are processed
// strictly in roster order with a fixed courtesy pause between them.
package provision

import (
	"context"
	"fmt"
	"time"

	"groupctl/internal/canvas"
	"groupctl/internal/logging"
	"groupctl/internal/match"
	"groupctl/internal/roster"
)

// Directory is the slice of the Canvas API the workflow needs. canvas.Client
// satisfies it; tests substitute a fake.
type Directory interface {
	ListGroupCategories(ctx context.Context, courseID int) ([]canvas.GroupCategory, error)
	CreateGroupCategory(ctx context.Context, courseID int, name string) (*canvas.GroupCategory, error)
	CreateGroup(ctx context.Context, categoryID int, name, description string) (*canvas.Group, error)
	AddMember(ctx context.Context, groupID, userID int) (*canvas.Membership, error)
	SetModerator(ctx context.Context, groupID, membershipID int) error
	GroupURL(groupID int) string
}

// Options tunes one provisioning run.
type Options struct {
	// CategoryName is the group set holding the project groups.
	CategoryName string

	// DescriptionPrefix is prepended to the project name in each group's
	// description.
	DescriptionPrefix string

	// Pause is the fixed delay between the end of one project and the start
	// of the next. Zero disables the pause.
	Pause time.Duration

	// Promote attempts to make each leader a group moderator. Best-effort.
	Promote bool
}

// Provisioner sequences the remote calls for a run.
type Provisioner struct {
	dir   Directory
	opts  Options
	sleep func(time.Duration) // time.Sleep, replaced in tests
}

// New creates a Provisioner over the given directory handle.
func New(dir Directory, opts Options) *Provisioner {
	return &Provisioner{dir: dir, opts: opts, sleep: time.Sleep}
}

// EnsureCategory looks up the configured category by exact name among the
// course's group categories and creates it when absent. Failure here is
// fatal to the whole run: without a category no group can be placed.
func (p *Provisioner) EnsureCategory(ctx context.Context, courseID int) (*canvas.GroupCategory, error) {
	categories, err := p.dir.ListGroupCategories(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing group categories: %w", err)
	}
	for _, c := range categories {
		if c.Name == p.opts.CategoryName {
			logging.Provision("using existing category %q (id %d)", c.Name, c.ID)
			return &c, nil
		}
	}

	category, err := p.dir.CreateGroupCategory(ctx, courseID, p.opts.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("creating group category %q: %w", p.opts.CategoryName, err)
	}
	logging.Provision("created category %q (id %d)", category.Name, category.ID)
	return category, nil
}

// Run processes every roster entry in order and returns one outcome per
// entry. Per-project failures are recorded and the run continues; only
// category resolution aborts it (see EnsureCategory, called first).
func (p *Provisioner) Run(ctx context.Context, courseID int, entries []roster.Entry, students []canvas.User) (*Summary, error) {
	category, err := p.EnsureCategory(ctx, courseID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Outcomes: make([]Outcome, 0, len(entries))}
	for i, entry := range entries {
		if i > 0 && p.opts.Pause > 0 {
			p.sleep(p.opts.Pause)
		}
		summary.Outcomes = append(summary.Outcomes, p.provisionOne(ctx, category.ID, entry, students))
	}

	logging.Provision("run complete: %d/%d projects provisioned", len(summary.Succeeded()), len(summary.Outcomes))
	return summary, nil
}

// provisionOne walks one project through the state machine:
// resolve -> create group -> add member -> promote -> record.
func (p *Provisioner) provisionOne(ctx context.Context, categoryID int, entry roster.Entry, students []canvas.User) Outcome {
	outcome := Outcome{Project: entry.Project, Leader: entry.Leader}

	leader, ok := match.Resolve(students, entry.Leader)
	if !ok {
		logging.ProvisionWarn("project %q: leader %q not found among %d students", entry.Project, entry.Leader, len(students))
		outcome.Status = StatusLeaderNotFound
		return outcome
	}
	outcome.Leader = leader.Name

	description := entry.Project
	if p.opts.DescriptionPrefix != "" {
		description = p.opts.DescriptionPrefix + " " + entry.Project
	}

	group, err := p.dir.CreateGroup(ctx, categoryID, entry.Project, description)
	if err != nil {
		logging.ProvisionError("project %q: create group: %v", entry.Project, err)
		outcome.Status = StatusGroupCreationFailed
		return outcome
	}
	outcome.GroupID = group.ID
	outcome.GroupURL = p.dir.GroupURL(group.ID)

	membership, err := p.dir.AddMember(ctx, group.ID, leader.ID)
	if err != nil {
		logging.ProvisionError("project %q: add leader %q: %v", entry.Project, leader.Name, err)
		outcome.Status = StatusMembershipFailed
		return outcome
	}

	if p.opts.Promote {
		if err := p.dir.SetModerator(ctx, group.ID, membership.ID); err != nil {
			// Best-effort: the leader stays a plain member.
			logging.ProvisionWarn("project %q: promote %q to moderator: %v", entry.Project, leader.Name, err)
		} else {
			outcome.Moderator = true
		}
	}

	outcome.Status = StatusSuccess
	logging.Provision("project %q: group %d ready, leader %q (moderator=%v)", entry.Project, group.ID, leader.Name, outcome.Moderator)
	return outcome
}
