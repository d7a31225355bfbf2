package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/parcel/internal/db"
	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/alexanderramin/parcel/internal/repository"
	"github.com/google/uuid"
)

type treeService struct {
	nodes    repository.NodeRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTreeService(nodes repository.NodeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TreeService {
	return &treeService{
		nodes:    nodes,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Save persists the whole tree in one transaction and returns the root ID.
func (s *treeService) Save(ctx context.Context, root *domain.Box) (id string, err error) {
	ev := startUseCase("save-tree", "")
	defer func() { finish(ctx, s.observer, ev, err) }()

	if root == nil {
		return "", domain.ErrNilNode
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		rootID, count, txErr := insertSubtree(ctx, repository.NewSQLiteNodeRepo(tx), nil, 0, root)
		ev.NodeID, ev.NodeCount = rootID, count
		id = rootID
		return txErr
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Load rebuilds the composite rooted at boxID.
func (s *treeService) Load(ctx context.Context, boxID string) (*domain.Box, error) {
	rec, err := s.nodes.GetByID(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if rec.Kind != domain.KindBox {
		return nil, fmt.Errorf("loading %s: %w", boxID, domain.ErrNotABox)
	}

	root := domain.NewBox(rec.Label)
	type pending struct {
		id  string
		box *domain.Box
	}
	queue := []pending{{id: rec.ID, box: root}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		children, err := s.nodes.ListChildren(ctx, p.id)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			node, err := c.ToNode()
			if err != nil {
				return nil, fmt.Errorf("loading node %s: %w", c.ID, err)
			}
			if err := p.box.Add(node); err != nil {
				return nil, fmt.Errorf("attaching node %s: %w", c.ID, err)
			}
			if box, ok := node.(*domain.Box); ok {
				queue = append(queue, pending{id: c.ID, box: box})
			}
		}
	}
	return root, nil
}

func (s *treeService) Describe(ctx context.Context, boxID string) (string, error) {
	root, err := s.Load(ctx, boxID)
	if err != nil {
		return "", err
	}
	return root.Describe(), nil
}

// Outline lists the stored subtree in pre-order. The root entry has depth 0.
func (s *treeService) Outline(ctx context.Context, boxID string) ([]OutlineEntry, error) {
	rec, err := s.nodes.GetByID(ctx, boxID)
	if err != nil {
		return nil, err
	}

	var out []OutlineEntry
	stack := []OutlineEntry{{Record: rec, IsLast: true}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, e)
		if e.Record.Kind != domain.KindBox {
			continue
		}

		children, err := s.nodes.ListChildren(ctx, e.Record.ID)
		if err != nil {
			return nil, err
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, OutlineEntry{
				Record: children[i],
				Depth:  e.Depth + 1,
				IsLast: i == len(children)-1,
			})
		}
	}
	return out, nil
}

func (s *treeService) ListRoots(ctx context.Context) ([]*domain.NodeRecord, error) {
	return s.nodes.ListRoots(ctx)
}

// ChildCount returns how many nodes sit directly in the stored box.
func (s *treeService) ChildCount(ctx context.Context, boxID string) (int, error) {
	return s.nodes.CountChildren(ctx, boxID)
}

func (s *treeService) Resolve(ctx context.Context, idOrPrefix string) (string, error) {
	return s.nodes.ResolvePrefix(ctx, idOrPrefix)
}

// AddNode appends node, with its whole subtree when it is a box, to the end
// of the stored box.
func (s *treeService) AddNode(ctx context.Context, boxID string, node domain.Node) (id string, err error) {
	ev := startUseCase("add-node", boxID)
	defer func() { finish(ctx, s.observer, ev, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		nodes := repository.NewSQLiteNodeRepo(tx)
		if err := requireBox(ctx, nodes, boxID); err != nil {
			return err
		}
		order, err := nodes.NextOrderIndex(ctx, boxID)
		if err != nil {
			return err
		}
		parent := boxID
		nodeID, count, err := insertSubtree(ctx, nodes, &parent, order, node)
		ev.NodeID, ev.NodeCount = nodeID, count
		id = nodeID
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Move re-parents an already stored node under boxID, appending it last.
func (s *treeService) Move(ctx context.Context, boxID, childID string) (err error) {
	ev := startUseCase("move-node", boxID)
	ev.NodeID = childID
	defer func() { finish(ctx, s.observer, ev, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		nodes := repository.NewSQLiteNodeRepo(tx)
		if err := requireBox(ctx, nodes, boxID); err != nil {
			return err
		}
		if _, err := nodes.GetByID(ctx, childID); err != nil {
			return err
		}
		inside, err := nodes.IsDescendant(ctx, childID, boxID)
		if err != nil {
			return err
		}
		if inside {
			return fmt.Errorf("moving %s into %s: %w", childID, boxID, domain.ErrCycle)
		}
		order, err := nodes.NextOrderIndex(ctx, boxID)
		if err != nil {
			return err
		}
		if ev.NodeCount, err = nodes.CountSubtree(ctx, childID); err != nil {
			return err
		}
		return nodes.SetParent(ctx, childID, &boxID, order)
	})
}

// RemoveChild deletes childID and everything under it when it sits directly
// in boxID. A child that is not there leaves the store untouched.
func (s *treeService) RemoveChild(ctx context.Context, boxID, childID string) (removed bool, err error) {
	ev := startUseCase("remove-node", boxID)
	ev.NodeID = childID
	defer func() { finish(ctx, s.observer, ev, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		nodes := repository.NewSQLiteNodeRepo(tx)
		if err := requireBox(ctx, nodes, boxID); err != nil {
			return err
		}
		child, err := nodes.GetByID(ctx, childID)
		if err != nil {
			return err
		}
		if child.ParentID == nil || *child.ParentID != boxID {
			return nil
		}
		if ev.NodeCount, err = nodes.CountSubtree(ctx, childID); err != nil {
			return err
		}
		if err := nodes.Delete(ctx, childID); err != nil {
			return err
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Delete drops a node together with every node it contains.
func (s *treeService) Delete(ctx context.Context, id string) (err error) {
	ev := startUseCase("delete-node", "")
	ev.NodeID = id
	defer func() { finish(ctx, s.observer, ev, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		nodes := repository.NewSQLiteNodeRepo(tx)
		count, err := nodes.CountSubtree(ctx, id)
		if err != nil {
			return err
		}
		if err := nodes.Delete(ctx, id); err != nil {
			return err
		}
		ev.NodeCount = count
		return nil
	})
}

func requireBox(ctx context.Context, nodes repository.NodeRepo, id string) error {
	rec, err := nodes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Kind != domain.KindBox {
		return fmt.Errorf("node %s: %w", id, domain.ErrNotABox)
	}
	return nil
}

// insertSubtree stores root under parentID at the given order and every
// descendant after it. It returns the root's new ID and the rows written.
func insertSubtree(ctx context.Context, nodes repository.NodeRepo, parentID *string, order int, root domain.Node) (string, int, error) {
	now := time.Now().UTC()

	type pending struct {
		node     domain.Node
		parentID *string
		order    int
	}
	var rootID string
	count := 0
	stack := []pending{{node: root, parentID: parentID, order: order}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rec, err := domain.RecordFromNode(p.node)
		if err != nil {
			return "", count, err
		}
		rec.ID = uuid.New().String()
		rec.ParentID = p.parentID
		rec.OrderIndex = p.order
		rec.CreatedAt = now
		if err := nodes.Create(ctx, rec); err != nil {
			return "", count, err
		}
		if rootID == "" {
			rootID = rec.ID
		}
		count++

		if box, ok := p.node.(*domain.Box); ok {
			id := rec.ID
			children := box.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, pending{node: children[i], parentID: &id, order: i})
			}
		}
	}
	return rootID, count, nil
}
