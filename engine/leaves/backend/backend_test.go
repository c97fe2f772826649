package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/merklequery/merkled/model/merkle"
	"github.com/merklequery/merkled/state"
	statemock "github.com/merklequery/merkled/state/mock"
	"github.com/merklequery/merkled/storage"
	"github.com/merklequery/merkled/utils/unittest"
)

type Suite struct {
	suite.Suite

	state    *statemock.State
	snapshot *statemock.Snapshot
	backend  *Backend
}

func TestBackend(t *testing.T) {
	suite.Run(t, new(Suite))
}

func (suite *Suite) SetupTest() {
	suite.state = new(statemock.State)
	suite.snapshot = new(statemock.Snapshot)
	suite.backend = New(suite.state, unittest.Logger())
}

// TestRangeTooLarge verifies that a span meeting or exceeding the maximum is
// rejected before the state engine is consulted.
func (suite *Suite) TestRangeTooLarge() {
	_, err := suite.backend.GetTreeLeaves(context.Background(), 1, 0, MaxLeafRange, nil)
	suite.Require().Error(err)
	suite.Assert().True(IsRangeTooLargeError(err))

	_, err = suite.backend.GetTreeLeaves(context.Background(), 1, 100, 100+MaxLeafRange, nil)
	suite.Require().Error(err)
	suite.Assert().True(IsRangeTooLargeError(err))

	// no snapshot was resolved and no leaf was fetched
	suite.state.AssertNotCalled(suite.T(), "Final")
	suite.state.AssertNotCalled(suite.T(), "AtStateID", mock.Anything)
	suite.snapshot.AssertNotCalled(suite.T(), "Leaf", mock.Anything, mock.Anything)
}

// TestInvertedRange verifies that to < from is rejected explicitly rather
// than wrapping into a huge unsigned span.
func (suite *Suite) TestInvertedRange() {
	_, err := suite.backend.GetTreeLeaves(context.Background(), 1, 5, 4, nil)
	suite.Require().Error(err)
	suite.Assert().True(IsInvalidRangeError(err))
	suite.Assert().False(IsRangeTooLargeError(err))

	suite.state.AssertNotCalled(suite.T(), "Final")
}

// TestEmptyRange verifies that from == to yields an empty response without
// any leaf fetches, and is not rejected by the size guard.
func (suite *Suite) TestEmptyRange() {
	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	suite.state.On("Final").Return(suite.snapshot).Once()

	leaves, err := suite.backend.GetTreeLeaves(context.Background(), 1, 42, 42, nil)
	suite.Require().NoError(err)
	suite.Assert().Empty(leaves)

	suite.snapshot.AssertNotCalled(suite.T(), "Leaf", mock.Anything, mock.Anything)
}

// TestFullRange verifies that a fully populated range returns every value in
// ascending index order.
func (suite *Suite) TestFullRange() {
	tree := merkle.TreeID(7)
	values := unittest.LeafFixtures(4)

	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	for i, value := range values {
		suite.snapshot.On("Leaf", tree, uint64(i)).Return(value, nil).Once()
	}
	suite.state.On("Final").Return(suite.snapshot).Once()

	leaves, err := suite.backend.GetTreeLeaves(context.Background(), tree, 0, 4, nil)
	suite.Require().NoError(err)
	suite.Assert().Equal(values, leaves)
}

// TestSparseRange verifies that absent indices are omitted without
// placeholders: tree 7 with leaves A,B,D at 0,1,3 and a gap at 2 yields
// [A, B, D] for the range [0, 4).
func (suite *Suite) TestSparseRange() {
	tree := merkle.TreeID(7)
	a, b, d := unittest.LeafFixture(), unittest.LeafFixture(), unittest.LeafFixture()

	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	suite.snapshot.On("Leaf", tree, uint64(0)).Return(a, nil).Once()
	suite.snapshot.On("Leaf", tree, uint64(1)).Return(b, nil).Once()
	suite.snapshot.On("Leaf", tree, uint64(2)).Return(merkle.Leaf{}, storage.ErrNotFound).Once()
	suite.snapshot.On("Leaf", tree, uint64(3)).Return(d, nil).Once()
	suite.state.On("Final").Return(suite.snapshot).Once()

	leaves, err := suite.backend.GetTreeLeaves(context.Background(), tree, 0, 4, nil)
	suite.Require().NoError(err)
	suite.Assert().Equal([]merkle.Leaf{a, b, d}, leaves)
}

// TestMaximumSpan verifies the boundary: a span of exactly MaxLeafRange-1
// indices is served.
func (suite *Suite) TestMaximumSpan() {
	tree := merkle.TreeID(1)

	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	suite.snapshot.On("Leaf", tree, mock.AnythingOfType("uint64")).
		Return(merkle.Leaf{}, storage.ErrNotFound).
		Times(MaxLeafRange - 1)
	suite.state.On("Final").Return(suite.snapshot).Once()

	leaves, err := suite.backend.GetTreeLeaves(context.Background(), tree, 0, MaxLeafRange-1, nil)
	suite.Require().NoError(err)
	suite.Assert().Empty(leaves)
}

// TestExplicitSnapshot verifies that a pinned request resolves through
// AtStateID rather than the head.
func (suite *Suite) TestExplicitSnapshot() {
	tree := merkle.TreeID(3)
	stateID := unittest.StateIDFixture()
	value := unittest.LeafFixture()

	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	suite.snapshot.On("Leaf", tree, uint64(0)).Return(value, nil).Once()
	suite.state.On("AtStateID", stateID).Return(suite.snapshot).Once()

	leaves, err := suite.backend.GetTreeLeaves(context.Background(), tree, 0, 1, &stateID)
	suite.Require().NoError(err)
	suite.Assert().Equal([]merkle.Leaf{value}, leaves)

	suite.state.AssertNotCalled(suite.T(), "Final")
}

// TestSnapshotNotFound verifies that an unknown snapshot fails the whole call
// with NotFound before any leaf fetch.
func (suite *Suite) TestSnapshotNotFound() {
	stateID := unittest.StateIDFixture()
	suite.snapshot.On("Head").Return(nil, state.UnknownSnapshotError(stateID)).Once()
	suite.state.On("AtStateID", stateID).Return(suite.snapshot).Once()

	_, err := suite.backend.GetTreeLeaves(context.Background(), 1, 0, 4, &stateID)
	suite.Require().Error(err)
	suite.Assert().Equal(codes.NotFound, status.Code(err))

	suite.snapshot.AssertNotCalled(suite.T(), "Leaf", mock.Anything, mock.Anything)
}

// TestEngineFailure verifies that a mid-range engine failure aborts the call
// without partial results.
func (suite *Suite) TestEngineFailure() {
	tree := merkle.TreeID(2)

	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	suite.snapshot.On("Leaf", tree, uint64(0)).Return(unittest.LeafFixture(), nil).Once()
	suite.snapshot.On("Leaf", tree, uint64(1)).
		Return(merkle.Leaf{}, status.Errorf(codes.Internal, "disk failure")).Once()
	suite.state.On("Final").Return(suite.snapshot).Once()

	leaves, err := suite.backend.GetTreeLeaves(context.Background(), tree, 0, 4, nil)
	suite.Require().Error(err)
	suite.Assert().Equal(codes.Internal, status.Code(err))
	suite.Assert().Nil(leaves)

	// the failing index terminated the call
	suite.snapshot.AssertNotCalled(suite.T(), "Leaf", tree, uint64(2))
}

// TestGetHeadSnapshot verifies head retrieval and the empty-state case.
func (suite *Suite) TestGetHeadSnapshot() {
	head := unittest.SnapshotFixture()
	suite.snapshot.On("Head").Return(head, nil).Once()
	suite.state.On("Final").Return(suite.snapshot).Once()

	actual, err := suite.backend.GetHeadSnapshot(context.Background())
	suite.Require().NoError(err)
	suite.Assert().Equal(head, actual)

	suite.snapshot.On("Head").Return(nil, state.ErrUnknownSnapshot).Once()
	suite.state.On("Final").Return(suite.snapshot).Once()

	_, err = suite.backend.GetHeadSnapshot(context.Background())
	suite.Require().Error(err)
	suite.Assert().Equal(codes.NotFound, status.Code(err))
}
