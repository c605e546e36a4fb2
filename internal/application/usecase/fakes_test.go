package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/tu-usuario/mentoria-pro/internal/application/authz"
	"github.com/tu-usuario/mentoria-pro/internal/application/usecase"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores reales: Get* devuelve (nil, nil) si no existe y los constraints
// únicos se traducen a los centinelas del dominio.
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	byID map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*entity.User{}} }

func (r *memUsers) Create(u *entity.User) error {
	for _, e := range r.byID {
		if e.Login == u.Login {
			return domain.ErrLoginExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUsers) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) GetByLogin(login string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Login == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUsers) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memProfiles struct {
	byUser map[string]*entity.Profile
}

func newMemProfiles() *memProfiles { return &memProfiles{byUser: map[string]*entity.Profile{}} }

func (r *memProfiles) Create(p *entity.Profile) error {
	if _, ok := r.byUser[p.UserID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.byUser[p.UserID] = &cp
	return nil
}

func (r *memProfiles) GetByUserID(userID string) (*entity.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProfiles) Update(p *entity.Profile) error {
	cp := *p
	r.byUser[p.UserID] = &cp
	return nil
}

type memGroups struct {
	byID    map[string]*entity.Group
	members *memMembers
}

func newMemGroups(members *memMembers) *memGroups {
	return &memGroups{byID: map[string]*entity.Group{}, members: members}
}

func (r *memGroups) Create(g *entity.Group) error {
	cp := *g
	r.byID[g.ID] = &cp
	return nil
}

func (r *memGroups) GetByID(id string) (*entity.Group, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (r *memGroups) Update(g *entity.Group) error {
	cp := *g
	r.byID[g.ID] = &cp
	return nil
}

func (r *memGroups) Search(query string, limit, offset int) ([]*entity.GroupWithCount, error) {
	q := strings.ToLower(query)
	var out []*entity.GroupWithCount
	for _, g := range r.byID {
		if q != "" && !strings.Contains(strings.ToLower(g.Name), q) {
			continue
		}
		count, _ := r.members.CountByGroup(g.ID)
		out = append(out, &entity.GroupWithCount{Group: *g, MemberCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MemberCount != out[j].MemberCount {
			return out[i].MemberCount > out[j].MemberCount
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memGroups) ListByUser(userID string) ([]*entity.Group, error) {
	var out []*entity.Group
	for _, m := range r.members.byID {
		if m.UserID != userID {
			continue
		}
		if g, ok := r.byID[m.GroupID]; ok {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memGroups) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memMembers struct {
	byID map[string]*entity.Membership
}

func newMemMembers() *memMembers { return &memMembers{byID: map[string]*entity.Membership{}} }

func (r *memMembers) Create(m *entity.Membership) error {
	for _, e := range r.byID {
		if e.UserID == m.UserID && e.GroupID == m.GroupID {
			return domain.ErrAlreadyMember
		}
	}
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *memMembers) GetByID(id string) (*entity.Membership, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMembers) GetByUserAndGroup(userID, groupID string) (*entity.Membership, error) {
	for _, m := range r.byID {
		if m.UserID == userID && m.GroupID == groupID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMembers) ListByGroup(groupID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.byID {
		if m.GroupID == groupID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMembers) UpdateStatus(id, status string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMembershipNotFound
	}
	m.Status = status
	return nil
}

func (r *memMembers) UpdateRole(id string, role entity.Role) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMembershipNotFound
	}
	m.Role = role
	return nil
}

func (r *memMembers) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memMembers) DeleteByGroup(groupID string) error {
	for id, m := range r.byID {
		if m.GroupID == groupID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memMembers) CountByGroup(groupID string) (int, error) {
	count := 0
	for _, m := range r.byID {
		if m.GroupID == groupID {
			count++
		}
	}
	return count, nil
}

type memPosts struct {
	byID map[string]*entity.Post
}

func newMemPosts() *memPosts { return &memPosts{byID: map[string]*entity.Post{}} }

func (r *memPosts) Create(p *entity.Post) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memPosts) GetByID(id string) (*entity.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPosts) Update(p *entity.Post) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memPosts) ListByGroup(groupID string, limit, offset int) ([]*entity.Post, error) {
	var out []*entity.Post
	for _, p := range r.byID {
		if p.GroupID == groupID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPosts) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memPosts) DeleteByGroup(groupID string) error {
	for id, p := range r.byID {
		if p.GroupID == groupID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memPosts) DeleteByMembership(membershipID string) error {
	for id, p := range r.byID {
		if p.MembershipID == membershipID {
			delete(r.byID, id)
		}
	}
	return nil
}

type memComments struct {
	byID  map[string]*entity.Comment
	posts *memPosts
}

func newMemComments(posts *memPosts) *memComments {
	return &memComments{byID: map[string]*entity.Comment{}, posts: posts}
}

func (r *memComments) Create(c *entity.Comment) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memComments) GetByID(id string) (*entity.Comment, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memComments) Update(c *entity.Comment) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memComments) ListByPost(postID string, limit, offset int) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.byID {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memComments) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memComments) DeleteByPost(postID string) error {
	for id, c := range r.byID {
		if c.PostID == postID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memComments) DeleteByGroup(groupID string) error {
	for id, c := range r.byID {
		p, ok := r.posts.byID[c.PostID]
		if ok && p.GroupID == groupID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memComments) DeleteByMembership(membershipID string) error {
	for id, c := range r.byID {
		if c.MembershipID == membershipID {
			delete(r.byID, id)
		}
	}
	return nil
}

type memReports struct {
	byID map[string]*entity.Report
}

func newMemReports() *memReports { return &memReports{byID: map[string]*entity.Report{}} }

func (r *memReports) Create(rep *entity.Report) error {
	cp := *rep
	r.byID[rep.ID] = &cp
	return nil
}

func (r *memReports) GetByID(id string) (*entity.Report, error) {
	rep, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *memReports) Update(rep *entity.Report) error {
	cp := *rep
	r.byID[rep.ID] = &cp
	return nil
}

func (r *memReports) List(status string, limit, offset int) ([]*entity.Report, error) {
	var out []*entity.Report
	for _, rep := range r.byID {
		if status != "" && rep.Status != status {
			continue
		}
		cp := *rep
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memReports) ListByReported(reportedID string) ([]*entity.Report, error) {
	var out []*entity.Report
	for _, rep := range r.byID {
		if rep.ReportedID == reportedID {
			cp := *rep
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memNotifications struct {
	byID map[string]*entity.Notification
}

func newMemNotifications() *memNotifications {
	return &memNotifications{byID: map[string]*entity.Notification{}}
}

func (r *memNotifications) Create(n *entity.Notification) error {
	cp := *n
	r.byID[n.ID] = &cp
	return nil
}

func (r *memNotifications) GetByID(id string) (*entity.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *memNotifications) ListByRecipient(recipientID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.byID {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (r *memNotifications) MarkRead(id string) error {
	if n, ok := r.byID[id]; ok {
		n.Read = true
	}
	return nil
}

func (r *memNotifications) MarkAllRead(recipientID string) error {
	for _, n := range r.byID {
		if n.RecipientID == recipientID {
			n.Read = true
		}
	}
	return nil
}

func (r *memNotifications) CountUnread(recipientID string) (int, error) {
	count := 0
	for _, n := range r.byID {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

type memMentorships struct {
	byID         map[string]*entity.Mentorship
	participants map[string]*entity.Participant
	dialogues    []*entity.Dialogue
	evaluations  map[string]*entity.Evaluation // key: mentorshipID + "/" + userID
}

func newMemMentorships() *memMentorships {
	return &memMentorships{
		byID:         map[string]*entity.Mentorship{},
		participants: map[string]*entity.Participant{},
		evaluations:  map[string]*entity.Evaluation{},
	}
}

func (r *memMentorships) Create(m *entity.Mentorship) error {
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *memMentorships) GetByID(id string) (*entity.Mentorship, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMentorships) UpdateStatus(id, status string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMentorshipNotFound
	}
	m.Status = status
	return nil
}

func (r *memMentorships) ListByUser(userID string) ([]*entity.Mentorship, error) {
	var out []*entity.Mentorship
	for _, p := range r.participants {
		if p.UserID != userID {
			continue
		}
		if m, ok := r.byID[p.MentorshipID]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMentorships) ListOffered(limit, offset int) ([]*entity.Mentorship, error) {
	var out []*entity.Mentorship
	for _, m := range r.byID {
		if m.Status == entity.MentorshipOffered {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMentorships) CreateParticipant(p *entity.Participant) error {
	for _, e := range r.participants {
		if e.MentorshipID == p.MentorshipID && e.UserID == p.UserID {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.participants[p.ID] = &cp
	return nil
}

func (r *memMentorships) GetParticipant(mentorshipID, userID string) (*entity.Participant, error) {
	for _, p := range r.participants {
		if p.MentorshipID == mentorshipID && p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMentorships) ListParticipants(mentorshipID string) ([]*entity.Participant, error) {
	var out []*entity.Participant
	for _, p := range r.participants {
		if p.MentorshipID == mentorshipID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMentorships) CreateDialogue(d *entity.Dialogue) error {
	cp := *d
	r.dialogues = append(r.dialogues, &cp)
	return nil
}

func (r *memMentorships) ListDialogues(mentorshipID string, limit, offset int) ([]*entity.Dialogue, error) {
	var out []*entity.Dialogue
	for _, d := range r.dialogues {
		if d.MentorshipID == mentorshipID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

func (r *memMentorships) CreateEvaluation(e *entity.Evaluation) error {
	key := e.MentorshipID + "/" + e.UserID
	if _, ok := r.evaluations[key]; ok {
		return domain.ErrAlreadyEvaluated
	}
	cp := *e
	r.evaluations[key] = &cp
	return nil
}

func (r *memMentorships) ListEvaluations(mentorshipID string) ([]*entity.Evaluation, error) {
	var out []*entity.Evaluation
	for _, e := range r.evaluations {
		if e.MentorshipID == mentorshipID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTx pasa los mismos fakes como repos "atados a la transacción". Suficiente
// para verificar la semántica de las cascadas; la atomicidad real la cubre el
// TxRunner de pgx.
type fakeTx struct {
	groups   *memGroups
	members  *memMembers
	posts    *memPosts
	comments *memComments
}

func (f *fakeTx) RunGroups(ctx context.Context, fn func(
	groups repository.GroupRepository,
	members repository.MembershipRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
) error) error {
	return fn(f.groups, f.members, f.posts, f.comments)
}

// world agrupa todos los fakes y los casos de uso ya cableados.
type world struct {
	users    *memUsers
	profiles *memProfiles
	groups   *memGroups
	members  *memMembers
	posts    *memPosts
	comments *memComments
	reports  *memReports
	notifs   *memNotifications
	mentors  *memMentorships

	groupUC   *usecase.GroupUseCase
	contentUC *usecase.ContentUseCase
	reportUC  *usecase.ReportUseCase
	notifUC   *usecase.NotificationUseCase
	mentorUC  *usecase.MentorshipUseCase
}

func newWorld() *world {
	w := &world{
		users:    newMemUsers(),
		profiles: newMemProfiles(),
		members:  newMemMembers(),
		posts:    newMemPosts(),
		reports:  newMemReports(),
		notifs:   newMemNotifications(),
		mentors:  newMemMentorships(),
	}
	w.groups = newMemGroups(w.members)
	w.comments = newMemComments(w.posts)
	tx := &fakeTx{groups: w.groups, members: w.members, posts: w.posts, comments: w.comments}
	engine := authz.NewEngine(w.members)
	w.notifUC = usecase.NewNotificationUseCase(w.notifs, w.users)
	w.groupUC = usecase.NewGroupUseCase(w.groups, w.members, w.users, engine, tx, w.notifUC)
	w.contentUC = usecase.NewContentUseCase(w.posts, w.comments, w.groups, w.members, engine, tx)
	w.reportUC = usecase.NewReportUseCase(w.reports, w.users)
	w.mentorUC = usecase.NewMentorshipUseCase(w.mentors, w.users, w.notifUC)
	return w
}

// addUser registra un usuario directo en el fake, sin pasar por auth.
func (w *world) addUser(id, login string, mentorEligible bool) *entity.User {
	u := &entity.User{
		ID:             id,
		Login:          login,
		Name:           login,
		Level:          entity.LevelStandard,
		Status:         entity.AccountNormal,
		MentorEligible: mentorEligible,
	}
	_ = w.users.Create(u)
	return u
}
