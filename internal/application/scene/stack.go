package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamekit/internal/application/system"
)

// Stack holds the active scenes. The last element is the current scene;
// everything below it is suspended but kept alive so it resumes when
// the scenes above it are popped.
//
// Transitions are synchronous: Push, Pop and Switch mutate the stack
// and fire OnExit/OnEnter before returning. A scene may call any of
// them from inside its own HandleEvents or Update; dispatch captures
// the target scene up front, so the mutation never confuses the frame
// in progress.
type Stack struct {
	scenes []Scene
}

// NewStack creates an empty scene stack.
func NewStack() *Stack {
	return &Stack{}
}

// Current returns the active scene, or nil if the stack is empty.
func (s *Stack) Current() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of scenes on the stack.
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Push suspends the current scene and activates sc on top of it.
// Use this for modals and overlays (pause over gameplay): the previous
// scene stays on the stack and resumes on Pop.
func (s *Stack) Push(sc Scene) {
	if cur := s.Current(); cur != nil {
		cur.OnExit()
	}
	s.scenes = append(s.scenes, sc)
	sc.OnEnter()
}

// Pop deactivates and removes the current scene, resuming the one
// below it if there is one. Pop on an empty stack is a no-op.
func (s *Stack) Pop() {
	cur := s.Current()
	if cur == nil {
		return
	}
	cur.OnExit()
	// The hook may itself have mutated the stack, so locate cur again
	// instead of truncating the top: the removal must take out cur,
	// not a scene the hook just pushed.
	i := len(s.scenes) - 1
	for i >= 0 && s.scenes[i] != cur {
		i--
	}
	if i < 0 {
		return
	}
	wasTop := i == len(s.scenes)-1
	s.scenes = append(s.scenes[:i], s.scenes[i+1:]...)
	if !wasTop {
		// The hook already activated something above cur; do not
		// re-enter it.
		return
	}
	if next := s.Current(); next != nil {
		next.OnEnter()
	}
}

// Switch replaces the current scene with sc, leaving the stack depth
// unchanged. Use this for hard transitions (title to gameplay) where
// no return path is implied. On an empty stack it behaves like Push.
func (s *Stack) Switch(sc Scene) {
	if cur := s.Current(); cur != nil {
		cur.OnExit()
		s.scenes = s.scenes[:len(s.scenes)-1]
	}
	s.scenes = append(s.scenes, sc)
	sc.OnEnter()
}

// HandleEvents forwards the event batch to the current scene.
// No-op on an empty stack.
func (s *Stack) HandleEvents(events []system.Event) {
	if cur := s.Current(); cur != nil {
		cur.HandleEvents(events)
	}
}

// Update forwards the frame update to the current scene.
// No-op on an empty stack.
func (s *Stack) Update(dt float64) {
	if cur := s.Current(); cur != nil {
		cur.Update(dt)
	}
}

// Draw forwards rendering to the current scene.
// No-op on an empty stack.
func (s *Stack) Draw(target *ebiten.Image) {
	if cur := s.Current(); cur != nil {
		cur.Draw(target)
	}
}
