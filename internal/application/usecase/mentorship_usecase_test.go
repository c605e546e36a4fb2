package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
)

func session(name string) (string, time.Time, time.Time) {
	start := time.Now().Add(24 * time.Hour)
	return name, start, start.Add(time.Hour)
}

// mentorWorld arma un mentor habilitado (m1) y un mentorado (a1).
func mentorWorld(t *testing.T) *world {
	t.Helper()
	w := newWorld()
	w.addUser("m1", "mentora", true)
	w.addUser("a1", "aprendiz", false)
	return w
}

func TestSolicit_SoloAMentoresHabilitados(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")

	_, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "a1", Name: name, StartsAt: start, EndsAt: end,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "autosolicitarse no tiene sentido")

	w.addUser("x1", "nomentor", false)
	_, err = w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "x1", Name: name, StartsAt: start, EndsAt: end,
	})
	assert.ErrorIs(t, err, domain.ErrNotMentor)

	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MentorshipRequested, m.Status)
	assert.Len(t, m.Participants, 2, "mentor y mentorado quedan vinculados desde el inicio")
}

func TestSolicit_RangoDeFechasInvalido(t *testing.T) {
	w := mentorWorld(t)
	start := time.Now().Add(24 * time.Hour)

	_, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: "Intro", StartsAt: start, EndsAt: start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el fin debe ser posterior al inicio")
}

func TestAccept_SolicitudLaAceptaElMentor(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)

	// un tercero no participante no puede aceptar
	w.addUser("x1", "intruso", false)
	_, err = w.mentorUC.Accept(m.ID, "x1")
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	// el mentorado tampoco: la solicitud la confirma el mentor
	_, err = w.mentorUC.Accept(m.ID, "a1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := w.mentorUC.Accept(m.ID, "m1")
	require.NoError(t, err)
	assert.Equal(t, entity.MentorshipScheduled, got.Status)

	// aceptar dos veces falla: scheduled no es aceptable
	_, err = w.mentorUC.Accept(m.ID, "m1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAccept_OfertaLaTomaUnMentorado(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Office hours")
	m, err := w.mentorUC.Offer("m1", dto.OfferMentorshipRequest{Name: name, StartsAt: start, EndsAt: end})
	require.NoError(t, err)
	assert.Equal(t, entity.MentorshipOffered, m.Status)

	// el propio mentor no puede tomar su oferta
	_, err = w.mentorUC.Accept(m.ID, "m1")
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := w.mentorUC.Accept(m.ID, "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.MentorshipScheduled, got.Status)
	assert.Len(t, got.Participants, 2)
}

func TestOffer_RequiereMentorHabilitado(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Office hours")

	_, err := w.mentorUC.Offer("a1", dto.OfferMentorshipRequest{Name: name, StartsAt: start, EndsAt: end})
	assert.ErrorIs(t, err, domain.ErrNotMentor)
}

func TestFinalize_SoloElMentorYSoloAgendada(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)

	_, err = w.mentorUC.Finalize(m.ID, "m1")
	assert.ErrorIs(t, err, domain.ErrConflict, "una solicitud sin aceptar no puede concluirse")

	_, err = w.mentorUC.Accept(m.ID, "m1")
	require.NoError(t, err)

	_, err = w.mentorUC.Finalize(m.ID, "a1")
	assert.ErrorIs(t, err, domain.ErrForbidden, "el mentorado no concluye la mentoría")

	got, err := w.mentorUC.Finalize(m.ID, "m1")
	require.NoError(t, err)
	assert.Equal(t, entity.MentorshipConcluded, got.Status)
}

func TestCancel_EstadoTerminalNoSeCancela(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)
	_, err = w.mentorUC.Accept(m.ID, "m1")
	require.NoError(t, err)
	_, err = w.mentorUC.Finalize(m.ID, "m1")
	require.NoError(t, err)

	_, err = w.mentorUC.Cancel(m.ID, "a1")
	assert.ErrorIs(t, err, domain.ErrConflict, "concluida es terminal")
}

func TestSendDialogue_SoloParticipantes(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)

	w.addUser("x1", "intruso", false)
	_, err = w.mentorUC.SendDialogue(m.ID, "x1", dto.SendDialogueRequest{Content: "hola?"})
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	_, err = w.mentorUC.SendDialogue(m.ID, "a1", dto.SendDialogueRequest{Content: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	msg, err := w.mentorUC.SendDialogue(m.ID, "a1", dto.SendDialogueRequest{Content: "¿arrancamos con slices?"})
	require.NoError(t, err)
	assert.Equal(t, "a1", msg.SenderID)

	// el mensaje notifica al otro participante
	count, err := w.notifs.CountUnread("m1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)

	// la conversación solo la leen los participantes
	_, err = w.mentorUC.ListDialogues(m.ID, "x1", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	list, err := w.mentorUC.ListDialogues(m.ID, "m1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "¿arrancamos con slices?", list[0].Content)
}

func TestSendDialogue_CanceladaNoAdmiteMensajes(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)
	_, err = w.mentorUC.Cancel(m.ID, "a1")
	require.NoError(t, err)

	_, err = w.mentorUC.SendDialogue(m.ID, "a1", dto.SendDialogueRequest{Content: "hola"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Evaluar exige mentoría concluida, score 0–5 y una sola evaluación por usuario.
func TestEvaluate_ReglasCompletas(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)
	_, err = w.mentorUC.Accept(m.ID, "m1")
	require.NoError(t, err)

	_, err = w.mentorUC.Evaluate(m.ID, "a1", dto.EvaluateRequest{Score: 5})
	assert.ErrorIs(t, err, domain.ErrNotConcluded, "no se evalúa antes de concluir")

	_, err = w.mentorUC.Finalize(m.ID, "m1")
	require.NoError(t, err)

	_, err = w.mentorUC.Evaluate(m.ID, "a1", dto.EvaluateRequest{Score: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el score va de 0 a 5")

	w.addUser("x1", "intruso", false)
	_, err = w.mentorUC.Evaluate(m.ID, "x1", dto.EvaluateRequest{Score: 3})
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	ev, err := w.mentorUC.Evaluate(m.ID, "a1", dto.EvaluateRequest{Score: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, ev.Score)

	_, err = w.mentorUC.Evaluate(m.ID, "a1", dto.EvaluateRequest{Score: 5})
	assert.ErrorIs(t, err, domain.ErrAlreadyEvaluated, "una sola evaluación por usuario y mentoría")

	// el mentor también puede evaluar: el par (mentoría, usuario) es distinto
	_, err = w.mentorUC.Evaluate(m.ID, "m1", dto.EvaluateRequest{Score: 5})
	require.NoError(t, err)
}

func TestListEvaluations_SoloParticipantes(t *testing.T) {
	w := mentorWorld(t)
	name, start, end := session("Intro a Go")
	m, err := w.mentorUC.Solicit("a1", dto.SolicitMentorshipRequest{
		MentorID: "m1", Name: name, StartsAt: start, EndsAt: end,
	})
	require.NoError(t, err)
	_, err = w.mentorUC.Accept(m.ID, "m1")
	require.NoError(t, err)
	_, err = w.mentorUC.Finalize(m.ID, "m1")
	require.NoError(t, err)

	_, err = w.mentorUC.Evaluate(m.ID, "a1", dto.EvaluateRequest{Score: 4})
	require.NoError(t, err)
	_, err = w.mentorUC.Evaluate(m.ID, "m1", dto.EvaluateRequest{Score: 5})
	require.NoError(t, err)

	w.addUser("x1", "intruso", false)
	_, err = w.mentorUC.ListEvaluations(m.ID, "x1")
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	evs, err := w.mentorUC.ListEvaluations(m.ID, "a1")
	require.NoError(t, err)
	require.Len(t, evs, 2)
	scores := map[string]int{}
	for _, e := range evs {
		scores[e.UserID] = e.Score
	}
	assert.Equal(t, 4, scores["a1"])
	assert.Equal(t, 5, scores["m1"])
}
