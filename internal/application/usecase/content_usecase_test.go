package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
)

// contentWorld arma un grupo con owner (u1), moderator (u2) y standard (u3).
func contentWorld(t *testing.T) (*world, string) {
	t.Helper()
	w := newWorld()
	w.addUser("u1", "ana", false)
	w.addUser("u2", "beto", false)
	w.addUser("u3", "carla", false)
	group, err := w.groupUC.Create(context.Background(), "u1", dto.CreateGroupRequest{Name: "Go Bogotá"})
	require.NoError(t, err)
	mBeto, err := w.groupUC.Join(group.ID, "u2")
	require.NoError(t, err)
	require.NoError(t, w.members.UpdateRole(mBeto.ID, entity.RoleModerator))
	_, err = w.groupUC.Join(group.ID, "u3")
	require.NoError(t, err)
	return w, group.ID
}

func TestCreatePost_RequiereMembresia(t *testing.T) {
	w, groupID := contentWorld(t)
	w.addUser("u9", "zoe", false)

	_, err := w.contentUC.CreatePost(groupID, "u9", dto.CreatePostRequest{Content: "hola"})
	assert.ErrorIs(t, err, domain.ErrNotAMember)
}

func TestCreatePost_ContenidoVacioFalla(t *testing.T) {
	w, groupID := contentWorld(t)

	_, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	_, err = w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{
		Content: strings.Repeat("x", entity.PostContentMax+1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el contenido no puede exceder el máximo")
}

func TestCreatePost_DesnormalizaAutoria(t *testing.T) {
	w, groupID := contentWorld(t)

	post, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "hola a todos"})
	require.NoError(t, err)
	assert.Equal(t, "carla", post.AuthorTag)
	assert.NotEmpty(t, post.MembershipID, "la autoría cuelga de la membresía, no del usuario")
}

// Editar exige autoría: la moderación habilita borrar, nunca editar.
func TestEditPost_SoloElAutor(t *testing.T) {
	w, groupID := contentWorld(t)
	post, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "versión uno"})
	require.NoError(t, err)

	_, err = w.contentUC.EditPost(post.ID, "u2", dto.EditContentRequest{Content: "hackeado"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "el moderator no puede editar posts ajenos")

	edited, err := w.contentUC.EditPost(post.ID, "u3", dto.EditContentRequest{Content: "versión dos"})
	require.NoError(t, err)
	assert.Equal(t, "versión dos", edited.Content)
}

// La suspensión bloquea también la edición del contenido propio: editar pasa
// por el motor de autorización igual que crear y borrar.
func TestEditPost_MiembroSuspendidoNoPuedeEditar(t *testing.T) {
	w, groupID := contentWorld(t)
	post, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "antes"})
	require.NoError(t, err)
	comment, err := w.contentUC.CreateComment(post.ID, "u3", dto.CreateCommentRequest{Content: "detalle"})
	require.NoError(t, err)

	m, err := w.members.GetByUserAndGroup("u3", groupID)
	require.NoError(t, err)
	require.NoError(t, w.groupUC.ModerateMember(groupID, m.ID, entity.MemberSuspended, "u1"))

	_, err = w.contentUC.EditPost(post.ID, "u3", dto.EditContentRequest{Content: "después"})
	assert.ErrorIs(t, err, domain.ErrMemberSuspended)
	_, err = w.contentUC.EditComment(comment.ID, "u3", dto.EditContentRequest{Content: "después"})
	assert.ErrorIs(t, err, domain.ErrMemberSuspended)

	// al restaurarlo vuelve a poder editar lo suyo
	require.NoError(t, w.groupUC.ModerateMember(groupID, m.ID, entity.MemberNormal, "u1"))
	edited, err := w.contentUC.EditPost(post.ID, "u3", dto.EditContentRequest{Content: "después"})
	require.NoError(t, err)
	assert.Equal(t, "después", edited.Content)
}

// Borrado de post: el autor o un moderator/owner del grupo; los comentarios
// del post caen con él.
func TestDeletePost_AutorOModeracion(t *testing.T) {
	w, groupID := contentWorld(t)
	ctx := context.Background()
	post, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "polémico"})
	require.NoError(t, err)
	comment, err := w.contentUC.CreateComment(post.ID, "u1", dto.CreateCommentRequest{Content: "uy"})
	require.NoError(t, err)

	// otro standard no puede borrar
	w.addUser("u4", "dario", false)
	_, err = w.groupUC.Join(groupID, "u4")
	require.NoError(t, err)
	err = w.contentUC.DeletePost(ctx, post.ID, "u4")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// el moderator sí
	require.NoError(t, w.contentUC.DeletePost(ctx, post.ID, "u2"))

	gone, _ := w.posts.GetByID(post.ID)
	assert.Nil(t, gone)
	c, _ := w.comments.GetByID(comment.ID)
	assert.Nil(t, c, "los comentarios del post caen con él")
}

func TestDeletePost_RequiereMembresiaEnElGrupoDelPost(t *testing.T) {
	w, groupID := contentWorld(t)
	post, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "hola"})
	require.NoError(t, err)

	w.addUser("u9", "zoe", false)
	err = w.contentUC.DeletePost(context.Background(), post.ID, "u9")
	assert.ErrorIs(t, err, domain.ErrNotAMember)
}

func TestComments_MismasReglasQuePosts(t *testing.T) {
	w, groupID := contentWorld(t)
	post, err := w.contentUC.CreatePost(groupID, "u1", dto.CreatePostRequest{Content: "bienvenidos"})
	require.NoError(t, err)

	comment, err := w.contentUC.CreateComment(post.ID, "u3", dto.CreateCommentRequest{Content: "gracias"})
	require.NoError(t, err)

	_, err = w.contentUC.EditComment(comment.ID, "u2", dto.EditContentRequest{Content: "no"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo el autor edita su comentario")

	// el moderator puede borrar el comentario ajeno
	require.NoError(t, w.contentUC.DeleteComment(comment.ID, "u2"))
	gone, _ := w.comments.GetByID(comment.ID)
	assert.Nil(t, gone)
}

func TestListPostsByGroup_MasRecientesPrimero(t *testing.T) {
	w, groupID := contentWorld(t)
	first, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "primero"})
	require.NoError(t, err)
	second, err := w.contentUC.CreatePost(groupID, "u3", dto.CreatePostRequest{Content: "segundo"})
	require.NoError(t, err)

	// garantizar orden temporal determinista en el fake
	p1, _ := w.posts.GetByID(first.ID)
	p2, _ := w.posts.GetByID(second.ID)
	p2.CreatedAt = p1.CreatedAt.Add(1)
	require.NoError(t, w.posts.Update(p2))

	feed, err := w.contentUC.ListPostsByGroup(groupID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "segundo", feed[0].Content, "el feed va del más nuevo al más viejo")
	assert.Equal(t, "carla", feed[0].AuthorTag)
}
