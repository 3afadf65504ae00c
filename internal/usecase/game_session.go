package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	msgInvalidMove = "Invalid move, try again."
	msgTie         = "It's a tie!"

	maxLineLength = 4096
)

type gameEngine interface {
	State() entity.GameState
	ApplyMove(row, col int) (entity.GameState, error)
}

// GameSession plays one game between two people sharing an input and an output.
type GameSession struct {
	id     string
	logger *slog.Logger

	engine     gameEngine
	convention console.Convention

	input      *bufio.Reader
	output     *sink
	transcript *sink
	layout     tictactoe.Layout
}

type Option func(*GameSession)

// WithTranscript - copies everything the players see, and what they typed, to w as plain text.
func WithTranscript(w io.Writer) Option {
	return func(that *GameSession) {
		that.transcript = &sink{w: w}
	}
}

// WithLayout - sets the layout used for boards on the main output.
func WithLayout(layout tictactoe.Layout) Option {
	return func(that *GameSession) {
		that.layout = layout
	}
}

func NewGameSession(logger *slog.Logger, engine gameEngine, convention console.Convention, in io.Reader, out io.Writer, opts ...Option) *GameSession {
	id := uuid.New().String()

	session := &GameSession{
		id:         id,
		logger:     logger.With("component", "game_session", "session", id),
		engine:     engine,
		convention: convention,
		input:      bufio.NewReaderSize(in, maxLineLength),
		output:     &sink{w: out},
		layout:     tictactoe.ClassicLayout,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

func (that *GameSession) ID() string {
	return that.id
}

// Play - runs the turn loop until the game is over, the input runs out or ctx is cancelled.
func (that *GameSession) Play(ctx context.Context) (entity.GameState, error) {
	log := that.logger.With("method", "Play")

	state := that.engine.State()
	size := state.Board.Size()
	log.Info("game started", "size", size, "input", that.convention.Name())

	for state.IsInProgress() {
		if err := ctx.Err(); err != nil {
			log.Info("game interrupted", "error", err)
			return state, err
		}

		player := state.Turn

		that.showBoard(state.Board)
		that.print(that.convention.Prompt(player, size))

		line, err := that.readLine()
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.record("\n")
			log.Warn("move rejected", "player", player, "error", err)
			that.print(msgInvalidMove + "\n")
			continue
		}
		if err != nil {
			return state, err
		}
		that.record(line + "\n")

		if err = ctx.Err(); err != nil {
			log.Info("game interrupted", "error", err)
			return state, err
		}

		next, err := that.makeMove(line, size)
		if isRejectedMove(err) {
			log.Warn("move rejected", "player", player, "input", line, "error", err)
			that.print(msgInvalidMove + "\n")
			continue
		}
		if err != nil {
			return state, fmt.Errorf("failed to make move: %w", err)
		}

		state = next
		log.Debug("move applied", "player", player, "input", line)

		if err = that.flushErr(); err != nil {
			return state, err
		}
	}

	that.showBoard(state.Board)
	that.print(outcomeMessage(state) + "\n")
	log.Info("game over", "status", state.Status, "winner", state.Winner)

	return state, that.flushErr()
}

func (that *GameSession) makeMove(line string, size int) (entity.GameState, error) {
	move, err := that.convention.Parse(line, size)
	if err != nil {
		return entity.GameState{}, err
	}

	return that.engine.ApplyMove(move.Row, move.Col)
}

// readLine - returns the next input line without its line ending.
// A line longer than maxLineLength is skipped and reported as ErrInvalidInput.
func (that *GameSession) readLine() (string, error) {
	line, err := that.input.ReadSlice('\n')

	switch {
	case err == nil:
		return strings.TrimRight(string(line), "\r\n"), nil
	case errors.Is(err, bufio.ErrBufferFull):
		if err = that.skipLine(); err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read move: %w", err)
		}
		return "", fmt.Errorf("%w: line longer than %d bytes", apperror.ErrInvalidInput, maxLineLength)
	case errors.Is(err, io.EOF) && len(line) > 0:
		return strings.TrimRight(string(line), "\r\n"), nil
	case errors.Is(err, io.EOF):
		return "", apperror.ErrInputClosed
	default:
		return "", fmt.Errorf("failed to read move: %w", err)
	}
}

// skipLine drops the rest of the current line.
func (that *GameSession) skipLine() error {
	for {
		_, err := that.input.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

func (that *GameSession) showBoard(board entity.Board) {
	that.output.write(tictactoe.RenderWith(board, that.layout))
	if that.transcript != nil {
		plain := that.layout
		plain.Paint = nil
		that.transcript.write(tictactoe.RenderWith(board, plain))
	}
}

// print writes s to the output and the transcript.
func (that *GameSession) print(s string) {
	that.output.write(s)
	that.record(s)
}

// record writes s to the transcript only.
func (that *GameSession) record(s string) {
	if that.transcript != nil {
		that.transcript.write(s)
	}
}

func (that *GameSession) flushErr() error {
	if that.output.err != nil {
		return fmt.Errorf("failed to write output: %w", that.output.err)
	}

	if that.transcript != nil && that.transcript.err != nil {
		return fmt.Errorf("failed to write transcript: %w", that.transcript.err)
	}

	return nil
}

func outcomeMessage(state entity.GameState) string {
	if state.Status == entity.StatusWon {
		return fmt.Sprintf("Player %s wins!", state.Winner)
	}

	return msgTie
}

func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidInput) ||
		errors.Is(err, apperror.ErrOutOfBounds) ||
		errors.Is(err, apperror.ErrCellOccupied)
}

// sink remembers the first write error so the loop can check once per turn.
type sink struct {
	w   io.Writer
	err error
}

func (that *sink) write(s string) {
	if that.err != nil {
		return
	}
	_, that.err = io.WriteString(that.w, s)
}
