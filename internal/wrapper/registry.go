package wrapper

import (
	"sort"
	"sync"
)

// Registry는 프로세스 전역의 name → Spec 매핑이다.
// 동일 이름으로 다시 Install하면 마지막 쓰기가 이긴다 (merge 아님).
// 항목은 프로세스 종료 시까지 유지되며 명시적 teardown은 없다.
type Registry struct {
	mu    sync.Mutex
	specs map[string]Spec
}

// NewRegistry는 빈 레지스트리를 생성한다.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Install은 spec을 등록한다. 기존 항목은 덮어쓴다.
func (r *Registry) Install(spec Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[spec.Name] = spec
}

// Lookup은 name으로 spec을 조회한다.
func (r *Registry) Lookup(name string) (Spec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// Remove는 name의 spec을 제거한다. 없으면 no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.specs, name)
}

// Names는 등록된 wrapper 이름을 정렬하여 반환한다.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len은 등록된 wrapper 개수를 반환한다.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.specs)
}
