package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen
// a códigos HTTP; los use cases devuelven siempre el más específico.
var (
	// No encontrado (404)
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrGroupNotFound      = errors.New("grupo no encontrado")
	ErrMembershipNotFound = errors.New("membresía no encontrada")
	ErrPostNotFound       = errors.New("publicación no encontrada")
	ErrCommentNotFound    = errors.New("comentario no encontrado")
	ErrMentorshipNotFound = errors.New("mentoría no encontrada")

	// Validación (400)
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEmptyContent = errors.New("el contenido no puede estar vacío")
	ErrSelfReport   = errors.New("un usuario no puede denunciarse a sí mismo")

	// Permisos y membresía (403)
	ErrForbidden        = errors.New("acceso denegado")
	ErrNotAMember       = errors.New("el usuario no es miembro del grupo")
	ErrInsufficientRole = errors.New("permiso denegado: rol insuficiente")
	ErrMemberSuspended  = errors.New("la membresía está suspendida o bloqueada")
	ErrOwnerCannotLeave = errors.New("el dueño debe transferir el grupo antes de salir")
	ErrNotParticipant   = errors.New("el usuario no participa en la mentoría")
	ErrNotMentor        = errors.New("el usuario no está habilitado como mentor")
	ErrAccountDisabled  = errors.New("cuenta suspendida o bloqueada")

	// Duplicados (409)
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrLoginExists      = errors.New("el login ya está registrado")
	ErrAlreadyMember    = errors.New("el usuario ya es miembro del grupo")
	ErrAlreadyEvaluated = errors.New("la mentoría ya fue evaluada por este usuario")

	// Autenticación (401)
	ErrUnauthorized = errors.New("no autorizado")

	// Estado (409)
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrNotConcluded = errors.New("la mentoría aún no ha concluido")
)
