package service

import "timeboard/internal/board"

type BoardService struct {
	session *Session
}

func NewBoardService(session *Session) *BoardService {
	return &BoardService{session: session}
}

// ToggleBoard shows or hides the whole board and returns the new visibility.
func (b *BoardService) ToggleBoard() bool {
	s := b.session
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := board.Toggle(s.board)
	s.touchLocked()
	return visible
}

func (b *BoardService) BoardVisible() bool {
	s := b.session
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Active()
}
