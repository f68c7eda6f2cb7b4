package world

type Msg interface{ isMsg() }

// MsgRestart starts a fresh run at the given difficulty.
type MsgRestart struct {
	Difficulty Difficulty
}

func (MsgRestart) isMsg() {}

type MsgTogglePause struct{}

func (MsgTogglePause) isMsg() {}
