package handlers

import (
	"context"
	"iter"

	"github.com/imamik/janitor/internal/janitor"
)

type mockInstances struct {
	ListInstanceIDsFunc func() ([]janitor.InstanceID, error)
}

func (m *mockInstances) ListInstanceIDs(_ context.Context) ([]janitor.InstanceID, error) {
	return m.ListInstanceIDsFunc()
}

func seq[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

type mockLogGroups struct {
	names   []string
	prefix  string
	deleted []string
}

func (m *mockLogGroups) ListLogGroups(_ context.Context, prefix string) iter.Seq2[string, error] {
	m.prefix = prefix
	return seq(m.names)
}

func (m *mockLogGroups) DeleteLogGroup(_ context.Context, name string) error {
	m.deleted = append(m.deleted, name)
	return nil
}

type mockQueues struct {
	urls      []string
	listCalls int
	deleted   []string
}

func (m *mockQueues) ListQueues(_ context.Context, _ string) iter.Seq2[string, error] {
	m.listCalls++
	return seq(m.urls)
}

func (m *mockQueues) DeleteQueue(_ context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return nil
}

type mockRecords struct {
	records   []janitor.Record
	listCalls int
	submitted []janitor.ChangeBatch
}

func (m *mockRecords) ListRecords(_ context.Context, _ string) iter.Seq2[janitor.Record, error] {
	m.listCalls++
	return seq(m.records)
}

func (m *mockRecords) SubmitChangeBatch(_ context.Context, _ string, batch janitor.ChangeBatch) error {
	m.submitted = append(m.submitted, batch)
	return nil
}

type mockWriter struct {
	PutObjectFunc func(bucket, key string) error
	keys          []string
}

func (m *mockWriter) PutObject(_ context.Context, bucket, key, _ string, _ []byte) error {
	m.keys = append(m.keys, bucket+"/"+key)
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(bucket, key)
	}
	return nil
}
