// pkg/commands/link/link_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Real temp directories
// PURPOSE: Test link and unlink end to end across every target state

package link_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/makky/pkg/commands/link"
	"github.com/arthur-debert/makky/pkg/commands/register"
	"github.com/arthur-debert/makky/pkg/commands/unlink"
	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkedFile is a registered file entry whose source and target live
// directly in root
type linkedFile struct {
	source  string
	content string
	target  string
}

func newLinkedFile(t *testing.T, root, metadataPath, prefix string) linkedFile {
	t.Helper()
	f := linkedFile{
		source:  filepath.Join(root, prefix+"-file-source"),
		content: prefix + "-file-source-content",
		target:  filepath.Join(root, prefix+"-file-target"),
	}
	require.NoError(t, os.WriteFile(f.source, []byte(f.content), 0644))
	require.NoError(t, register.Register(register.Options{
		MetadataPath: metadataPath,
		Source:       f.source,
		Target:       prefix + "-file-target",
	}))
	return f
}

func (f linkedFile) assertCreated(t *testing.T) {
	t.Helper()
	testutil.AssertSymlinkTo(t, f.target, f.source)
	testutil.AssertFileContent(t, f.target, f.content)
}

func (f linkedFile) assertRemoved(t *testing.T) {
	t.Helper()
	testutil.AssertNotExists(t, f.target)
	testutil.AssertFileContent(t, f.source, f.content)
}

// linkedDirectory is a registered directory entry holding a single file.
// The directory source is created inside dir, which may itself be another
// entry's source.
type linkedDirectory struct {
	source     string
	sourceFile string
	content    string
	target     string
	targetFile string
}

func newLinkedDirectory(t *testing.T, root, dir, metadataPath, prefix string) linkedDirectory {
	t.Helper()
	rel, err := filepath.Rel(root, dir)
	require.NoError(t, err)
	targetRel := filepath.Join(rel, prefix+"-directory-target")

	d := linkedDirectory{
		source:  filepath.Join(dir, prefix+"-directory-source"),
		content: prefix + "-source-directory-file-content",
		target:  filepath.Join(root, targetRel),
	}
	d.sourceFile = filepath.Join(d.source, "file")
	d.targetFile = filepath.Join(d.target, "file")

	require.NoError(t, os.Mkdir(d.source, 0755))
	require.NoError(t, os.WriteFile(d.sourceFile, []byte(d.content), 0644))
	require.NoError(t, register.Register(register.Options{
		MetadataPath: metadataPath,
		Source:       d.source,
		Target:       targetRel,
	}))
	return d
}

func (d linkedDirectory) assertCreated(t *testing.T) {
	t.Helper()
	testutil.AssertRealDir(t, d.target)
	testutil.AssertSymlinkTo(t, d.targetFile, d.sourceFile)
	testutil.AssertFileContent(t, d.targetFile, d.content)
}

func (d linkedDirectory) assertRemoved(t *testing.T) {
	t.Helper()
	testutil.AssertNotExists(t, d.targetFile)
	testutil.AssertFileContent(t, d.sourceFile, d.content)
}

func TestLinkUnlinkAllStates(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	root := env.TargetRoot
	metadataPath := filepath.Join(root, "makky.metadata")

	fileX := filepath.Join(root, "file-x")
	require.NoError(t, os.WriteFile(fileX, []byte("file-x"), 0644))

	fileEquals := newLinkedFile(t, root, metadataPath, "equals")
	env.Symlink(fileEquals.source, fileEquals.target)

	fileVacantNotPresent := newLinkedFile(t, root, metadataPath, "vacant-not-present")

	fileVacantPresent := newLinkedFile(t, root, metadataPath, "vacant-present")
	env.Symlink(fileX, fileVacantPresent.target)

	dirEquals := newLinkedDirectory(t, root, root, metadataPath, "equals")
	env.Symlink(dirEquals.source, dirEquals.target)

	dirLevel0 := newLinkedDirectory(t, root, root, metadataPath, "level-0")
	dirLevel1 := newLinkedDirectory(t, root, dirLevel0.source, metadataPath, "level-1")

	dirVacantEquals := newLinkedDirectory(t, root, root, metadataPath, "vacant-equals")
	require.NoError(t, os.Mkdir(dirVacantEquals.target, 0755))
	env.Symlink(dirVacantEquals.sourceFile, dirVacantEquals.targetFile)

	dirVacantNotPresent := newLinkedDirectory(t, root, root, metadataPath, "vacant-not-present")

	dirVacantPresent := newLinkedDirectory(t, root, root, metadataPath, "vacant-present")
	require.NoError(t, os.Mkdir(dirVacantPresent.target, 0755))
	env.Symlink(fileX, dirVacantPresent.targetFile)

	opts := link.Options{MetadataPath: metadataPath, TargetRoot: root}
	for i := 0; i < 2; i++ {
		_, err := link.Link(opts)
		require.NoError(t, err, "link run %d", i+1)
	}

	testutil.AssertSymlinkTo(t, fileEquals.target, fileEquals.source)
	fileVacantNotPresent.assertCreated(t)
	fileVacantPresent.assertCreated(t)
	testutil.AssertSymlinkTo(t, dirEquals.target, dirEquals.source)
	dirLevel0.assertCreated(t)
	dirLevel1.assertCreated(t)
	dirVacantEquals.assertCreated(t)
	dirVacantNotPresent.assertCreated(t)
	dirVacantPresent.assertCreated(t)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, filepath.Join(root, e.Name()))
	}
	expected := []string{
		dirEquals.source, dirEquals.target,
		dirLevel0.source, dirLevel0.target,
		dirVacantEquals.source, dirVacantEquals.target,
		dirVacantNotPresent.source, dirVacantNotPresent.target,
		dirVacantPresent.source, dirVacantPresent.target,
		fileEquals.source, fileEquals.target,
		fileVacantNotPresent.source, fileVacantNotPresent.target,
		fileVacantPresent.source, fileVacantPresent.target,
		fileX, metadataPath,
	}
	sort.Strings(expected)
	assert.Equal(t, expected, names)

	_, err = unlink.Unlink(unlink.Options{MetadataPath: metadataPath, TargetRoot: root})
	require.NoError(t, err)

	fileEquals.assertRemoved(t)
	fileVacantNotPresent.assertRemoved(t)
	fileVacantPresent.assertRemoved(t)
	testutil.AssertNotExists(t, dirEquals.target)
	dirEquals.assertRemoved(t)
	dirLevel0.assertRemoved(t)
	dirLevel1.assertRemoved(t)
	dirVacantEquals.assertRemoved(t)
	dirVacantNotPresent.assertRemoved(t)
	dirVacantPresent.assertRemoved(t)
	testutil.AssertFileContent(t, fileX, "file-x")
}

func TestLinkReportsEntriesAndActions(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{
		"a":   "a",
		"dir": testutil.FileTree{"f": "f"},
	})
	env.AppendMetadata(env.Source("a"), "a")
	env.AppendMetadata(env.Source("dir"), "dir")

	rep := &recorder{}
	result, err := link.Link(link.Options{
		MetadataPath: env.MetadataPath,
		TargetRoot:   env.TargetRoot,
		ShowActions:  true,
		Reporter:     rep,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Creating symlink: " + env.Source("a") + " -> " + env.Target("a"),
		"  create link: " + env.Source("a") + " -> " + env.Target("a"),
		"Creating symlink: " + env.Source("dir") + " -> " + env.Target("dir"),
		"  create directory:  -> " + env.Target("dir"),
		"  create link: " + env.Source("dir/f") + " -> " + env.Target("dir/f"),
	}, rep.lines)
	assert.Len(t, result.Entries, 2)
	assert.Len(t, result.Actions, 3)
}

func TestLinkDryRunChangesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{"a": "a"})
	env.AppendMetadata(env.Source("a"), "nested/a")
	before := testutil.SnapshotTree(t, env.TargetRoot)

	rep := &recorder{}
	result, err := link.Link(link.Options{
		MetadataPath: env.MetadataPath,
		TargetRoot:   env.TargetRoot,
		DryRun:       true,
		Reporter:     rep,
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, before, testutil.SnapshotTree(t, env.TargetRoot))
	require.Len(t, rep.lines, 2)
	assert.Equal(t, "  would create link: "+env.Source("a")+" -> "+env.Target("nested/a"), rep.lines[1])
}

func TestLinkValidationErrorsMutateNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{"a": "a"})
	env.AppendMetadata(env.Source("a"), "a")
	env.AppendMetadata(env.Source("missing"), "b")
	before := testutil.SnapshotTree(t, env.TargetRoot)

	rep := &recorder{}
	_, err := link.Link(link.Options{
		MetadataPath: env.MetadataPath,
		TargetRoot:   env.TargetRoot,
		Reporter:     rep,
	})
	require.Error(t, err)
	assert.Equal(t,
		"link: read metadata: parse entries:\n\tentry: source not exists: "+env.Source("missing"),
		err.Error())
	assert.True(t, errors.IsErrorCode(err, errors.ErrEntrySourceNotExists))
	assert.Empty(t, rep.lines)
	assert.Equal(t, before, testutil.SnapshotTree(t, env.TargetRoot))
}

func TestLinkTargetExists(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{"a": "a"})
	env.WithTargets(testutil.FileTree{"occupied": "file-x"})
	env.AppendMetadata(env.Source("a"), "occupied")

	_, err := link.Link(link.Options{MetadataPath: env.MetadataPath, TargetRoot: env.TargetRoot})
	require.Error(t, err)
	assert.Equal(t,
		"link: read metadata: parse entries:\n\tentry: target already exists: "+env.Target("occupied"),
		err.Error())
}

func TestLinkTargetDuplicate(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{"source": "source-content"})
	for i := 0; i < 2; i++ {
		require.NoError(t, register.Register(register.Options{
			MetadataPath: env.MetadataPath,
			Source:       env.Source("source"),
			Target:       "target",
		}))
	}

	_, err := link.Link(link.Options{MetadataPath: env.MetadataPath, TargetRoot: env.TargetRoot})
	require.Error(t, err)
	assert.Equal(t,
		"link: read metadata: parse entries:\n\tentry: target duplicate: "+env.Source("source")+" -> target",
		err.Error())
	testutil.AssertNotExists(t, env.Target("target"))
}

func TestLinkConflictStopsAtFailingEntry(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{
		"a":   "a",
		"dir": testutil.FileTree{"f": "f"},
		"c":   "c",
	})
	// a real directory where a file link is wanted passes validation but
	// is refused by the reconciler
	env.WithTargets(testutil.FileTree{"b": testutil.FileTree{"keep": "keep"}})
	env.AppendMetadata(env.Source("a"), "a")
	env.AppendMetadata(env.Source("c"), "b")
	env.AppendMetadata(env.Source("dir"), "dir")

	result, err := link.Link(link.Options{MetadataPath: env.MetadataPath, TargetRoot: env.TargetRoot})
	require.Error(t, err)
	assert.Equal(t,
		"link: create "+env.Source("c")+" -> "+env.Target("b")+": target occupied: "+env.Target("b"),
		err.Error())
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkCreate))
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetOccupied))

	require.NotNil(t, result)
	assert.Len(t, result.Entries, 1)
	testutil.AssertSymlinkTo(t, env.Target("a"), env.Source("a"))
	testutil.AssertFileContent(t, env.Target("b/keep"), "keep")
	testutil.AssertNotExists(t, env.Target("dir"))
}

func TestLinkTargetRootErrors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMetadata("")

	_, err := link.Link(link.Options{MetadataPath: env.MetadataPath, TargetRoot: "relative"})
	require.Error(t, err)
	assert.Equal(t, "link: read metadata: target root is not an absolute path: relative", err.Error())

	missing := filepath.Join(env.Root, "missing")
	_, err = link.Link(link.Options{MetadataPath: env.MetadataPath, TargetRoot: missing})
	require.Error(t, err)
	assert.Equal(t, "link: read metadata: target root is not a directory: "+missing, err.Error())
}

func TestAbsoluteRelativeExample(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithSources(testutil.FileTree{"a": "a"})
	require.NoError(t, register.Register(register.Options{
		MetadataPath: env.MetadataPath,
		Source:       env.Source("a"),
		Target:       "rel/b",
	}))

	_, err := link.Link(link.Options{MetadataPath: env.MetadataPath, TargetRoot: env.TargetRoot})
	require.NoError(t, err)
	testutil.AssertRealDir(t, env.Target("rel"))
	testutil.AssertSymlinkTo(t, env.Target("rel/b"), env.Source("a"))

	_, err = unlink.Unlink(unlink.Options{MetadataPath: env.MetadataPath, TargetRoot: env.TargetRoot})
	require.NoError(t, err)
	testutil.AssertNotExists(t, env.Target("rel/b"))
	testutil.AssertRealDir(t, env.Target("rel"))
}

type recorder struct {
	lines []string
}

func (r *recorder) Entry(verb, source, target string) {
	r.lines = append(r.lines, verb+": "+source+" -> "+target)
}

func (r *recorder) Action(kind, source, target string, dryRun bool) {
	prefix := "  "
	if dryRun {
		prefix += "would "
	}
	r.lines = append(r.lines, prefix+kind+": "+source+" -> "+target)
}
