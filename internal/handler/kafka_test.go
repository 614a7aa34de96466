package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/SergeyBogomolovv/courier-hub/pkg/utils"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomsStub struct {
	sent []fanout.Message
	err  error
}

func (r *roomsStub) Send(_ context.Context, msg fanout.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func TestKafkaHandler_HandleRoomMessage(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		sendErr  error
		wantErr  bool
		wantRoom string
	}{
		{
			name:     "valid message",
			value:    `{"room":"user_b1","event":"orderUpdate","data":{"status":"confirmed"}}`,
			wantRoom: "user_b1",
		},
		{
			name:    "broken json",
			value:   `{"room":`,
			wantErr: true,
		},
		{
			name:    "missing room",
			value:   `{"event":"orderUpdate","data":{}}`,
			wantErr: true,
		},
		{
			name:    "hub closed",
			value:   `{"room":"delivery_d1","event":"locationUpdated","data":{}}`,
			sendErr: fanout.ErrHubClosed,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rooms := &roomsStub{err: tc.sendErr}
			h := &kafkaHandler{validate: utils.NewValidator(), rooms: rooms}

			err := h.handleRoomMessage(context.Background(), kafka.Message{Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, rooms.sent)
				if tc.sendErr != nil {
					assert.True(t, errors.Is(err, tc.sendErr))
				}
				return
			}

			require.NoError(t, err)
			require.Len(t, rooms.sent, 1)
			assert.Equal(t, tc.wantRoom, rooms.sent[0].Room)
			assert.JSONEq(t, `{"status":"confirmed"}`, string(rooms.sent[0].Data))
		})
	}
}
