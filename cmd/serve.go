package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/grid"
	"github.com/jsphweid/pianoroll/midi"
	"github.com/jsphweid/pianoroll/model"
	"github.com/jsphweid/pianoroll/source"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the piano roll grid",
	Long:  `Serves the piano roll grid page and the API the page drives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr != "" {
			cfg.Server.Addr = addr
		}
		src, err := source.New(cfg.Source)
		if err != nil {
			return err
		}
		s := NewServer(src)
		log.WithFields(log.Fields{"addr": cfg.Server.Addr, "source": cfg.Source.Kind}).Info("serving")
		return http.ListenAndServe(cfg.Server.Addr, s.Handler())
	},
}

type Server struct {
	src      source.Source
	sessions *sessionStore
}

func NewServer(src source.Source) *Server {
	return &Server{
		src: src,
		sessions: newSessionStore(cfg.Server.SessionIdle, func() *grid.Grid {
			return newGrid()
		}),
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/", s.HandlePage).Methods("GET")
	router.HandleFunc("/api/load", s.HandleLoad).Methods("POST")
	router.HandleFunc("/api/rolls", s.HandleRolls).Methods("GET")
	router.HandleFunc("/api/rolls/{id:[0-9]+}.svg", s.HandleRollSVG).Methods("GET")
	router.HandleFunc("/api/rolls/{id:[0-9]+}/midi", s.HandleRollMidi).Methods("GET")
	router.HandleFunc("/api/focus/{id:[0-9]+}", s.HandleFocus).Methods("POST")
	router.HandleFunc("/api/pointer", s.HandlePointer).Methods("POST")
	return router
}

// Handler is the router behind CORS. With no allowed origins configured the
// API is same-origin only and no CORS headers are sent.
func (s *Server) Handler() http.Handler {
	if len(cfg.Server.AllowedOrigins) == 0 {
		return s.Router()
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	})
	return c.Handler(s.Router())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := errs.StatusCode(err)
	if status >= 500 {
		log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: errs.Message(err)})
}

func rollID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.WithDesc("bad roll id", "Roll id must be a number"))
	}
	return id, nil
}

func noData() error {
	return fault.Wrap(fault.New("no data loaded"), ftag.With(errs.NotFound), fmsg.WithDesc("no data loaded", "Load the piano roll data first"))
}

func (s *Server) HandleLoad(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.grid.Load(r.Context(), s.src); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.grid.Summaries())
}

func (s *Server) HandleRolls(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	writeJSON(w, http.StatusOK, sess.grid.Summaries())
}

func (s *Server) roll(w http.ResponseWriter, r *http.Request, sess *session) (*grid.Roll, bool) {
	id, err := rollID(r)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if !sess.grid.HasData() {
		writeError(w, noData())
		return nil, false
	}
	roll, ok := sess.grid.Roll(id)
	if !ok {
		writeError(w, fault.Wrap(fault.New(fmt.Sprintf("no roll %d", id)), ftag.With(errs.NotFound), fmsg.WithDesc("unknown roll", "No such piano roll")))
		return nil, false
	}
	return roll, true
}

func (s *Server) HandleRollSVG(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	roll, ok := s.roll(w, r, sess)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	roll.Surface.WriteTo(w)
}

func (s *Server) HandleRollMidi(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	roll, ok := s.roll(w, r, sess)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := midi.WriteChunk(&buf, roll.Chunk); err != nil {
		writeError(w, fault.Wrap(err, fmsg.With("could not export roll")))
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="roll-%02d.mid"`, roll.ID))
	w.Write(buf.Bytes())
}

func (s *Server) HandleFocus(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	id, err := rollID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if !sess.grid.HasData() {
		writeError(w, noData())
		return
	}
	if _, err := sess.grid.Focus(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.grid.Summaries())
}

func (s *Server) HandlePointer(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.With("could not read request body")))
		return
	}

	var input model.PointerRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.WithDesc("bad pointer body", "Could not parse pointer event")))
		return
	}

	sess := s.sessions.forRequest(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	g := sess.grid
	res := model.PointerResponse{Focused: g.Focused()}

	switch input.Type {
	case model.PointerDown:
		g.PointerDown(input.Roll, input.PointerEvent)
	case model.PointerMove:
		g.PointerMove(input.PointerEvent)
	case model.PointerUp:
		res.Count, res.Completed = g.PointerUp(input.PointerEvent)
	default:
		writeError(w, fault.Wrap(fault.New(fmt.Sprintf("unknown pointer event %q", input.Type)),
			ftag.With(errs.InvalidArgument), fmsg.WithDesc("bad pointer event", "Pointer event type must be down, move or up")))
		return
	}

	res.State = "idle"
	if c := g.Controller(); c != nil {
		res.State = c.State().String()
		if sel, ok := c.Selection(); ok {
			res.Selection = &sel
		}
		res.SVG = c.Surface().String()
	}
	writeJSON(w, http.StatusOK, res)
}
