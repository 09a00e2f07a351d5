package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const componentSource = `import {ChangeDetectionStrategy, Component, Inject} from '@angular/core';

@Component({
    moduleId: module.id,
    selector: 'app-foo-bar',
    templateUrl: './foo-bar.component.html',
    changeDetection: ChangeDetectionStrategy.OnPush,
})
export class FooBarComponent {
    @Input() public label = '';

    constructor(private readonly http: HttpClient, @Inject(TOKEN) public config: Config) {}

    public run(): void {
        const constructor = () => {};
    }
}
`

const directiveSource = `import {Directive} from '@angular/core';

@Directive({selector: '[appHighlight]', standalone: true})
export class HighlightDirective {}
`

const servicesSource = `export class Helper {}

@Injectable()
export class UserService {
    constructor(http: HttpClient, ...rest: unknown[]) {}
}
`

const storeSource = `// @Component is not used here
@LucidInjectable()
export class Store {
    private readonly api = lucidInject(Api);
}
`

func classifiers() map[string]Classifier {
	return map[string]Classifier{
		"text": TextClassifier{},
		"tree": TreeClassifier{},
	}
}

func TestClassify_Component(t *testing.T) {
	for name, c := range classifiers() {
		t.Run(name, func(t *testing.T) {
			d, err := c.Classify(context.Background(), "/ws/foo-bar/foo-bar.component.ts", []byte(componentSource))
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, "FooBarComponent", d.ClassName)
			assert.Equal(t, KindComponent, d.Kind)
			assert.Equal(t, "Component", d.Decorator)
			assert.Equal(t, []string{"Component"}, d.Decorators)
			assert.Equal(t, "app-foo-bar", d.Selector)
			assert.False(t, d.Standalone)
			assert.True(t, d.HasConstructor)
			assert.Equal(t, []string{"http", "config"}, d.ParamNames())
			assert.Empty(t, d.Warnings)
		})
	}
}

func TestClassify_StandaloneDirective(t *testing.T) {
	for name, c := range classifiers() {
		t.Run(name, func(t *testing.T) {
			d, err := c.Classify(context.Background(), "/ws/highlight.directive.ts", []byte(directiveSource))
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, "HighlightDirective", d.ClassName)
			assert.Equal(t, KindDirective, d.Kind)
			assert.Equal(t, "[appHighlight]", d.Selector)
			assert.True(t, d.Standalone)
			assert.False(t, d.HasConstructor)
			assert.Empty(t, d.ConstructorParams)
		})
	}
}

func TestClassify_PrefersClassMatchingFileName(t *testing.T) {
	for name, c := range classifiers() {
		t.Run(name, func(t *testing.T) {
			d, err := c.Classify(context.Background(), "/ws/user.service.ts", []byte(servicesSource))
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, "UserService", d.ClassName)
			assert.Equal(t, KindInjectable, d.Kind)
			assert.Equal(t, []string{"http", "rest"}, d.ParamNames())
			require.Len(t, d.Warnings, 1)
			assert.Contains(t, d.Warnings[0], "matching the file name (UserService)")
		})
	}
}

func TestClassify_FallsBackToFirstClass(t *testing.T) {
	src := "export class Alpha {}\nexport class Beta {}\n"
	for name, c := range classifiers() {
		t.Run(name, func(t *testing.T) {
			d, err := c.Classify(context.Background(), "/ws/things.ts", []byte(src))
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, "Alpha", d.ClassName)
			assert.Equal(t, KindPlain, d.Kind)
			require.Len(t, d.Warnings, 1)
			assert.Contains(t, d.Warnings[0], "first one (Alpha)")
		})
	}
}

func TestClassify_CustomDecorator(t *testing.T) {
	for name, c := range classifiers() {
		t.Run(name, func(t *testing.T) {
			d, err := c.Classify(context.Background(), "/ws/store.ts", []byte(storeSource))
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, "Store", d.ClassName)
			assert.Equal(t, KindPlain, d.Kind)
			assert.Equal(t, "LucidInjectable", d.Decorator)
			assert.True(t, d.HasDecorator("@LucidInjectable"))
			assert.False(t, d.HasDecorator("Component"))
			assert.Contains(t, d.Source, "lucidInject(Api)")
		})
	}
}

func TestClassify_NoExportedClass(t *testing.T) {
	src := "export const answer = 42;\nclass Hidden {}\n"
	for name, c := range classifiers() {
		t.Run(name, func(t *testing.T) {
			d, err := c.Classify(context.Background(), "/ws/answer.ts", []byte(src))
			require.NoError(t, err)
			assert.Nil(t, d)
		})
	}
}

func TestClassifiersAgree(t *testing.T) {
	files := map[string]string{
		"/ws/foo-bar.component.ts":   componentSource,
		"/ws/highlight.directive.ts": directiveSource,
		"/ws/user.service.ts":        servicesSource,
		"/ws/store.ts":               storeSource,
	}
	for path, src := range files {
		text, err := TextClassifier{}.Classify(context.Background(), path, []byte(src))
		require.NoError(t, err)
		tree, err := TreeClassifier{}.Classify(context.Background(), path, []byte(src))
		require.NoError(t, err)

		assert.Equal(t, tree.ClassName, text.ClassName, path)
		assert.Equal(t, tree.Kind, text.Kind, path)
		assert.Equal(t, tree.Decorators, text.Decorators, path)
		assert.Equal(t, tree.Selector, text.Selector, path)
		assert.Equal(t, tree.Standalone, text.Standalone, path)
		assert.Equal(t, tree.ParamNames(), text.ParamNames(), path)
	}
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.IsType(t, TreeClassifier{}, c)

	c, err = New(StrategyText)
	require.NoError(t, err)
	assert.IsType(t, TextClassifier{}, c)

	_, err = New("regex")
	assert.Error(t, err)
}

func TestParamName(t *testing.T) {
	tests := map[string]string{
		"http: HttpClient":                  "http",
		"private readonly http: HttpClient": "http",
		"@Optional() @Inject(A_TOKEN) a: A": "a",
		"public override readonly x = 1":    "x",
		"...rest: string[]":                 "rest",
		"{a, b}: Options":                   "{a, b}",
	}
	for src, want := range tests {
		assert.Equal(t, want, paramName(src), src)
	}
}
