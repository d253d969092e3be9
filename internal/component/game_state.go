// internal/component/game_state.go
package component

// Phase — фаза партии. Переход Active → Over односторонний.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseOver
)

// OverReason — причина окончания партии.
type OverReason string

const (
	ReasonPlayerShot     OverReason = "player_shot"
	ReasonReachedBottom  OverReason = "reached_bottom"
	ReasonSessionStopped OverReason = "session_stopped"
)
