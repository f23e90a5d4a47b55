package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sol-token-api/internal/pkg/xerr"
	"sol-token-api/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResp() types.CreateTokenResp {
	return types.CreateTokenResp{
		ProgramID:       "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		Accounts:        []types.AccountMeta{{Pubkey: "SysvarRent111111111111111111111111111111111"}},
		InstructionData: "1111",
	}
}

func TestBuild_Success(t *testing.T) {
	code, body := Build(fullResp(), types.EmptyCreateTokenResp(), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)
	assert.Equal(t, fullResp(), body.Data)
	assert.Empty(t, body.Error)
}

// 任何错误路径下，data 中的字符串为空、序列为空，不泄露部分结果
func TestBuild_FailureIsEmpty(t *testing.T) {
	errs := map[string]struct {
		err  error
		code int
	}{
		"caller":   {fmt.Errorf("%w: bad key", xerr.NewBadRequest("invalid mint")), http.StatusBadRequest},
		"internal": {xerr.NewInternal("boom"), http.StatusInternalServerError},
		"unknown":  {errors.New("unexpected"), http.StatusInternalServerError},
	}

	for name, tc := range errs {
		t.Run(name, func(t *testing.T) {
			code, body := Build(fullResp(), types.EmptyCreateTokenResp(), tc.err)
			assert.Equal(t, tc.code, code)
			assert.False(t, body.Success)
			assert.Empty(t, body.Data.ProgramID)
			assert.Empty(t, body.Data.InstructionData)
			assert.NotNil(t, body.Data.Accounts)
			assert.Empty(t, body.Data.Accounts)
			assert.NotEmpty(t, body.Error)

			kcode, kbody := Build(types.KeypairResp{Pubkey: "p", Secret: "s"}, types.KeypairResp{}, tc.err)
			assert.Equal(t, tc.code, kcode)
			assert.Equal(t, types.KeypairResp{}, kbody.Data)
		})
	}
}

func TestBuild_InternalMessageHidden(t *testing.T) {
	_, body := Build(types.KeypairResp{}, types.KeypairResp{}, fmt.Errorf("%w: /dev/urandom read", xerr.NewInternal("entropy")))
	assert.Equal(t, internalErrorMsg, body.Error)
}

func TestWrite_JSONShape(t *testing.T) {
	w := httptest.NewRecorder()
	Write(context.Background(), w, fullResp(), types.EmptyCreateTokenResp(), xerr.ErrInvalidRequest)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `false`, string(raw["success"]))
	assert.JSONEq(t, `{"program_id":"","accounts":[],"instruction_data":""}`, string(raw["data"]))
}
