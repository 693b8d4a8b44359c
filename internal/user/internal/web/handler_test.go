// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webshop/internal/test"
	"github.com/ecodeclub/webshop/internal/user/internal/domain"
	"github.com/ecodeclub/webshop/internal/user/internal/errs"
	"github.com/ecodeclub/webshop/internal/user/internal/service"
	usermocks "github.com/ecodeclub/webshop/internal/user/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Signup(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UserService
		req      SignupReq
		wantCode int
		wantResp test.Result[Profile]
	}{
		{
			name: "注册成功",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Create(gomock.Any(), domain.User{
					Username: "alice",
					Email:    "alice@x.com",
					Password: "pw123",
					Role:     domain.RoleCustomer,
				}).Return(domain.User{Id: 1, Username: "alice", Email: "alice@x.com", Role: domain.RoleCustomer}, nil)
				return svc
			},
			req:      SignupReq{Username: "alice", Email: "alice@x.com", Password: "pw123"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{
				Data: Profile{Id: 1, Username: "alice", Email: "alice@x.com", Role: "customer"},
			},
		},
		{
			name: "邮箱已被注册",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.User{}, service.ErrDuplicateIdentity)
				return svc
			},
			req:      SignupReq{Username: "alice2", Email: "alice@x.com", Password: "pw123"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{Code: errs.DuplicateIdentity.Code, Msg: errs.DuplicateIdentity.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/users/signup", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Login(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UserService
		req      LoginReq
		wantCode int
		wantResp test.Result[Profile]
	}{
		{
			name: "邮箱登录成功",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Authenticate(gomock.Any(), "alice@x.com", "", "pw123").
					Return(domain.User{Id: 1, Username: "alice", Email: "alice@x.com", Role: domain.RoleCustomer}, nil)
				return svc
			},
			req:      LoginReq{Email: "alice@x.com", Password: "pw123"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{
				Data: Profile{Id: 1, Username: "alice", Email: "alice@x.com", Role: "customer"},
			},
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Authenticate(gomock.Any(), "", "alice", "wrong").
					Return(domain.User{}, service.ErrInvalidCredentials)
				return svc
			},
			req:      LoginReq{Username: "alice", Password: "wrong"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{Code: errs.InvalidCredentials.Code, Msg: errs.InvalidCredentials.Msg},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Authenticate(gomock.Any(), "nobody@x.com", "", "pw").
					Return(domain.User{}, service.ErrUserNotFound)
				return svc
			},
			req:      LoginReq{Email: "nobody@x.com", Password: "pw"},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{Code: errs.UserNotFound.Code, Msg: errs.UserNotFound.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/users/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := usermocks.NewMockUserService(ctrl)
	svc.EXPECT().Profile(gomock.Any(), int64(7)).
		Return(domain.User{Id: 7, Username: "root", Email: "root@x.com", Role: domain.RoleAdministrator}, nil)

	server := gin.Default()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  7,
			Data: map[string]string{"role": "administrator"},
		}))
	})
	NewHandler(svc).PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, Profile{Id: 7, Username: "root", Email: "root@x.com", Role: "administrator"}, recorder.MustScan().Data)
}
