package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// stubMemberService 成员服务桩实现，记录最近一次调用入参
type stubMemberService struct {
	lastUserUuid string
	lastReq      any
	err          error
}

func (s *stubMemberService) ToggleMembership(userUuid string, req request.ToggleMembershipRequest) (*respond.ToggleMembershipRespond, error) {
	s.lastUserUuid = userUuid
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &respond.ToggleMembershipRespond{
		Detail: "joined", ForumUuid: req.ForumUuid, RoleType: "member", MemberCnt: 2,
	}, nil
}
func (s *stubMemberService) AsyncToggleMembership(userUuid, forumUuid string) error {
	s.lastUserUuid = userUuid
	return s.err
}
func (s *stubMemberService) ApplyToggle(forumUuid, userUuid string) error { return s.err }
func (s *stubMemberService) ChangeMemberRole(operator authz.Principal, req request.ChangeMemberRoleRequest) error {
	s.lastUserUuid = operator.UserUuid
	s.lastReq = req
	return s.err
}
func (s *stubMemberService) BanMember(operator authz.Principal, req request.BanMemberRequest) error {
	s.lastUserUuid = operator.UserUuid
	s.lastReq = req
	return s.err
}
func (s *stubMemberService) UnbanMember(operator authz.Principal, req request.UnbanMemberRequest) error {
	return s.err
}
func (s *stubMemberService) SignIn(userUuid, forumUuid string) (*respond.SignInRespond, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &respond.SignInRespond{Detail: "signed in", GainedExp: 30}, nil
}
func (s *stubMemberService) GetMemberList(forumUuid string) ([]respond.MemberRespond, error) {
	return []respond.MemberRespond{}, s.err
}
func (s *stubMemberService) GetAuditLogs(req request.GetAuditLogRequest) (*respond.GetAuditLogWrapper, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &respond.GetAuditLogWrapper{List: []respond.AuditLogRespond{}}, nil
}
func (s *stubMemberService) ReconcileMemberCounts() error        { return s.err }
func (s *stubMemberService) StartReconciler(interval time.Duration) {}

// newMemberTestRouter 构造带登录态的测试路由
// 模拟 JWTAuth 注入 user_id，再经 LoadPrincipal 得到鉴权主体
func newMemberTestRouter(t *testing.T, svc *stubMemberService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := InitTrans("zh"); err != nil {
		t.Fatalf("init trans: %v", err)
	}

	h := NewMemberHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "U1") })
	r.Use(middleware.LoadPrincipal(func(userUuid string) (authz.Principal, error) {
		return authz.Principal{UserUuid: userUuid, Authenticated: true}, nil
	}))
	r.POST("/forum/toggleMembership", h.ToggleMembership)
	r.POST("/forum/banMember", h.BanMember)
	r.POST("/forum/signIn", h.SignIn)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ResponseData {
	t.Helper()
	var rsp ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &rsp); err != nil {
		t.Fatalf("decode respond: %v (body %s)", err, w.Body.String())
	}
	return rsp
}

func TestToggleMembershipHandler(t *testing.T) {
	svc := &stubMemberService{}
	r := newMemberTestRouter(t, svc)

	w := postJSON(t, r, "/forum/toggleMembership", gin.H{"forum_uuid": "F1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	rsp := decodeEnvelope(t, w)
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("code = %d, want %d (msg %v)", rsp.Code, errorx.CodeSuccess, rsp.Msg)
	}
	// 操作人身份取自登录态，不取请求体
	if svc.lastUserUuid != "U1" {
		t.Errorf("user uuid = %q, want U1", svc.lastUserUuid)
	}
}

func TestToggleMembershipHandlerParamError(t *testing.T) {
	svc := &stubMemberService{}
	r := newMemberTestRouter(t, svc)

	// 缺少 forum_uuid
	w := postJSON(t, r, "/forum/toggleMembership", gin.H{})
	rsp := decodeEnvelope(t, w)
	if rsp.Code != errorx.CodeInvalidParam {
		t.Errorf("code = %d, want %d", rsp.Code, errorx.CodeInvalidParam)
	}
}

func TestBanMemberHandlerBusinessError(t *testing.T) {
	svc := &stubMemberService{err: errorx.New(errorx.CodeForbidden, "只能封禁普通成员")}
	r := newMemberTestRouter(t, svc)

	w := postJSON(t, r, "/forum/banMember", gin.H{
		"forum_uuid": "F1", "target_uuid": "U2", "reason": "测试",
	})
	rsp := decodeEnvelope(t, w)
	if rsp.Code != errorx.CodeForbidden {
		t.Errorf("code = %d, want %d", rsp.Code, errorx.CodeForbidden)
	}
	if rsp.Msg != "只能封禁普通成员" {
		t.Errorf("msg = %v", rsp.Msg)
	}
}

func TestSignInHandler(t *testing.T) {
	svc := &stubMemberService{}
	r := newMemberTestRouter(t, svc)

	w := postJSON(t, r, "/forum/signIn", gin.H{"forum_uuid": "F1"})
	rsp := decodeEnvelope(t, w)
	if rsp.Code != errorx.CodeSuccess {
		t.Errorf("code = %d, want %d (msg %v)", rsp.Code, errorx.CodeSuccess, rsp.Msg)
	}
}
